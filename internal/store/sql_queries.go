package store

const (
	findUserByID = `SELECT user_id, email, first_name, last_name, role, is_active, is_fake,
        assigned_coach_id, mini_diploma_category, first_login_at, last_login_at, login_count, created_at
    FROM users
    WHERE user_id = $1;`

	findUserByEmail = `SELECT user_id, email, first_name, last_name, role, is_active, is_fake,
        assigned_coach_id, mini_diploma_category, first_login_at, last_login_at, login_count, created_at
    FROM users
    WHERE email = $1;`

	// Placeholders are numbered in order of first occurrence: SQLite
	// assigns $-named parameters indices as it first sees them, so any
	// other numbering binds the positional args reversed on that backend.
	setAssignedCoach = `UPDATE users
    SET assigned_coach_id = $1
    WHERE user_id = $2;`

	recordLogin = `UPDATE users
    SET last_login_at = $1,
        login_count = login_count + 1,
        first_login_at = COALESCE(first_login_at, $1)
    WHERE user_id = $2
    RETURNING login_count;`

	createMessage = `INSERT INTO messages (sender_id, receiver_id, content, type, attachment_url, attachment_type, attachment_name, voice_duration)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING message_id, sender_id, receiver_id, content, type, attachment_url, attachment_type, attachment_name, voice_duration, created_at;`

	countMessagesWithPrefix = `SELECT COUNT(*)
    FROM messages
    WHERE receiver_id = $1 AND content LIKE $2;`

	createNotification = `INSERT INTO notifications (user_id, type, title, message, payload)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING notification_id, user_id, type, title, message, payload, created_at;`

	createScheduledMessage = `INSERT INTO scheduled_messages (sender_id, receiver_id, kind, text_content, voice_script, trigger_name, trigger_value, scheduled_for, status)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING scheduled_message_id, sender_id, receiver_id, kind, text_content, voice_script, trigger_name, trigger_value, scheduled_for, status, attempts, last_error, sent_at, created_at;`

	countActiveScheduledForReceiver = `SELECT COUNT(*)
    FROM scheduled_messages
    WHERE receiver_id = $1 AND status IN ('PENDING', 'PROCESSING');`

	listDueScheduledMessages = `SELECT scheduled_message_id, sender_id, receiver_id, kind, text_content, voice_script, trigger_name, trigger_value, scheduled_for, status, attempts, last_error, sent_at, created_at
    FROM scheduled_messages
    WHERE status = 'PENDING' AND scheduled_for <= $1
    ORDER BY scheduled_for
    LIMIT $2;`

	claimScheduledMessage = `UPDATE scheduled_messages
    SET status = 'PROCESSING'
    WHERE scheduled_message_id = $1 AND status = 'PENDING';`

	markScheduledMessageSent = `UPDATE scheduled_messages
    SET status = 'SENT', sent_at = $1
    WHERE scheduled_message_id = $2;`

	markScheduledMessageFailed = `UPDATE scheduled_messages
    SET status = 'FAILED', attempts = attempts + 1, last_error = $1
    WHERE scheduled_message_id = $2;`

	requeueScheduledMessage = `UPDATE scheduled_messages
    SET status = 'PENDING', last_error = ''
    WHERE scheduled_message_id = $1 AND status = 'FAILED';`

	recordDelivery = `INSERT INTO message_deliveries (receiver_id, trigger_key, occurrence_key)
    VALUES ($1, $2, $3)
    RETURNING delivery_id;`

	linkDeliveryMessage = `UPDATE message_deliveries
    SET message_id = $1
    WHERE delivery_id = $2;`

	createLoginEvent = `INSERT INTO login_events (user_id, ip, country, country_code, city, region, isp, user_agent)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING login_event_id, user_id, ip, country, country_code, city, region, isp, user_agent, created_at;`
)
