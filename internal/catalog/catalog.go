// Package catalog holds the static auto-message content tables: per-trigger
// text bodies with optional voice scripts, keyed by module index, lesson
// milestone, day count or trigger name. Lookups are pure; a missing key
// means "do not send".
package catalog

import "strings"

// Content is a single catalog entry. Text and VoiceScript may contain a
// {{firstName}} placeholder substituted at send time via Personalize.
type Content struct {
	Text        string
	VoiceScript string
	HasVoice    bool
}

func text(t string) Content {
	return Content{Text: t}
}

func voiced(t, script string) Content {
	return Content{Text: t, VoiceScript: script, HasVoice: true}
}

// moduleComplete covers the main certification track, modules 1 through 21.
// Milestone modules carry a voice script on top of the text body.
var moduleComplete = map[int]Content{
	1: voiced(
		"{{firstName}}, you finished your very first module! 🎉 That first step is the hardest one, and you just took it. I'm so excited for what's ahead of you.",
		"Hey {{firstName}}! I just saw you finished your first module. I'm really proud of you, the first step is always the hardest. Keep going, you've got this!",
	),
	2:  text("Module 2 done, {{firstName}}! You're building real momentum now. The foundations you're laying here will carry you through the whole certification."),
	3:  text("{{firstName}}, that's module 3 complete! You're officially past the point where most people stop. That says a lot about you. 💪"),
	4:  text("Four modules in, {{firstName}}! The hormone chapters can be dense, so take a moment to be proud of yourself before moving on."),
	5: voiced(
		"{{firstName}}, module 5 is done — you're almost a quarter of the way through the certification! 🌟",
		"{{firstName}}, five modules already! You're almost a quarter of the way there. I can tell you're serious about this, and it shows.",
	),
	6:  text("Module 6 complete, {{firstName}}! The nutrition fundamentals you just covered are the backbone of everything coming next."),
	7:  text("{{firstName}}, seven modules down! You're developing a real practitioner's eye. Keep applying what you learn to your own routine."),
	8:  text("Module 8 done! {{firstName}}, the case studies get more hands-on from here — this is where the material starts to feel like real coaching."),
	9:  text("{{firstName}}, module 9 complete! You've covered more ground than many practicing coaches ever do. Really well done."),
	10: text("Double digits, {{firstName}}! 🎉 Ten modules complete. Take a breath, look back at module 1, and notice how much you already know."),
	11: voiced(
		"{{firstName}}, you just crossed the halfway mark! 11 of 21 modules done. The second half is where everything clicks together. 🌟",
		"{{firstName}}! You're past halfway! Eleven modules done. Honestly, this is where it gets exciting, everything you've learned starts to connect. So proud of you.",
	),
	12: text("Module 12 complete, {{firstName}}! Client communication is a skill most programs skip — you're going to be ahead of the curve."),
	13: text("{{firstName}}, thirteen modules done! The practical protocols you just learned are the ones my own clients ask about most."),
	14: text("Module 14 done, {{firstName}}! You're deep into the advanced material now and you're handling it beautifully."),
	15: text("{{firstName}}, module 15 complete! Only six to go. The finish line is genuinely in sight now. 🏁"),
	16: voiced(
		"{{firstName}}, module 16 done — you're in the final stretch of the certification! 💪",
		"Hey {{firstName}}, sixteen modules! You're in the final stretch now. The last modules are all about putting it into practice. Almost there!",
	),
	17: text("Module 17 complete, {{firstName}}! The business-building material you're in now is what turns knowledge into a career."),
	18: text("{{firstName}}, eighteen down, three to go! Start thinking about your first practice clients — you're nearly ready for them."),
	19: text("Module 19 done, {{firstName}}! Two modules left. You've been so consistent — it's honestly inspiring to watch."),
	20: text("{{firstName}}, module 20 complete!! One. Module. Left. 🎉 I can't wait to congratulate you on finishing."),
	21: voiced(
		"{{firstName}}, YOU DID IT! All 21 modules complete! 🎓 Your certification exam is unlocked — take it when you feel ready. I am so, so proud of you.",
		"{{firstName}}... you finished all twenty one modules. I'm honestly a little emotional recording this. You did the work, every single module. Your exam is unlocked whenever you're ready. Congratulations!",
	),
}

// miniDiplomaModuleComplete covers the mini-diploma funnel, modules 0
// through 3 only. Module 4 and above belong to the final-exam flow and are
// deliberately absent.
var miniDiplomaModuleComplete = map[int]Content{
	0: voiced(
		"Welcome to your mini-diploma, {{firstName}}! 🌸 You've just completed the intro module. This short program is a taste of what becoming a certified coach feels like.",
		"Hi {{firstName}}, welcome! You just finished the intro module of your mini diploma. I'll be here with you along the way, enjoy it!",
	),
	1: text("{{firstName}}, module 1 of your mini-diploma is done! You're already learning things most people never get taught about their own health."),
	2: text("Module 2 complete, {{firstName}}! One more module and your mini-diploma is yours. You're so close! 💪"),
	3: voiced(
		"{{firstName}}, you finished the final module of your mini-diploma! 🎉 Your exam is waiting for you — pass it and the diploma is yours.",
		"{{firstName}}, you did it, all the mini diploma modules are done! Your exam is ready whenever you are. Good luck, not that you need it!",
	),
}

// whLessonComplete is the women's-health track milestone table. Only the
// listed lesson indices produce a message; this is a literal allow-list,
// not an every-Nth rule.
var whLessonComplete = map[int]Content{
	3: text("{{firstName}}, lesson 3 of the women's health program is done! You've settled into a rhythm — this is exactly how lasting change starts. 🌸"),
	6: text("Lesson 6 complete, {{firstName}}! You're two-thirds of the way through the program. The protocols from this lesson are ones you'll come back to again and again."),
	9: voiced(
		"{{firstName}}, you completed the final lesson of the women's health program! 🎉 Everything you need is in your hands now — I'd love to hear how you apply it.",
		"{{firstName}}, congratulations! That was the last lesson of the program. You showed up for all nine of them, and that consistency is everything. Well done!",
	),
}

// whAccessExpiring is keyed by days-remaining.
var whAccessExpiring = map[string]Content{
	"1": text("{{firstName}}, just a heads-up — your access to the women's health program ends tomorrow. If there are lessons you want to revisit, today is the day! 💛"),
	"2": text("Hi {{firstName}}! Your access to the women's health program expires in 2 days. Make sure to download your workbooks and finish any lessons you've saved for later."),
}

// whInactivity is keyed by days-since-last-activity.
var whInactivity = map[string]Content{
	"2": text("Hi {{firstName}}! I noticed you haven't been in the program for a couple of days. Life gets busy — your next lesson is short, maybe tonight is a good moment? 🌸"),
	"5": text("{{firstName}}, it's been almost a week since your last lesson. No guilt — just a gentle nudge. Even 15 minutes today keeps the momentum alive. I'm rooting for you!"),
}

// named is the generic trigger→content map: signup funnel day-N messages
// and the remaining one-off named triggers.
var named = map[string]Content{
	"sequence_day_2": text("Hi {{firstName}}! It's day 2 and I wanted to check in. Have you had a chance to look around the platform? Your first module is a great place to start. 😊"),
	"sequence_day_3": text("{{firstName}}, quick thought for day 3: the students who finish their certification are the ones who pick a fixed study time. What's yours going to be?"),
	"sequence_day_4": text("Day 4, {{firstName}}! Did you know the first module takes less than an hour? That's one evening to get the hardest step out of the way."),
	"sequence_day_5": text("{{firstName}}, I shared a story in the community today about a student who started exactly where you are now. Have a look — I think it'll resonate."),
	"sequence_day_6": text("Hi {{firstName}}! Day 6 already. If anything about the program feels unclear, just reply here — I read every message personally."),
	"sequence_day_7": text("{{firstName}}, it's been a week since you joined! 🎉 This is usually the moment people either commit or drift. I'd love to see you in module 1 this week."),
	"pricing_page_visit": text("Hi {{firstName}}! I saw you were looking at the certification options. If you're weighing it up and have questions, ask me anything — no pressure, ever. 😊"),
	"training_video_complete": text("{{firstName}}, you watched the full training — amazing! 🎉 Most people don't make it to the end. If it sparked something, the certification takes everything in the video much deeper."),
	"certificate_ready": voiced(
		"{{firstName}}, your certificate is ready!! 🎓🎉 You can download it from your profile right now. Print it, frame it, share it — you earned every bit of it.",
		"{{firstName}}, your certificate is officially ready! Go download it, share it everywhere, you earned it. Congratulations, coach!",
	),
	"inactivity_7": text("{{firstName}}, it's been a week since I last saw you in the course. Your progress is saved exactly where you left it — one lesson tonight and you're back in the flow. 💪"),
}

// welcome is the first-login welcome payload, sent delayed by the
// scheduler rather than immediately.
var welcome = voiced(
	"Hi {{firstName}}, welcome! 🌸 I'm Sarah, your personal coach here. I'm so happy you joined us! I recorded a short voice note for you — and if you have any questions at all, just write to me right here. This chat goes directly to me.",
	"Hi {{firstName}}! It's Sarah, your coach. I just wanted to personally welcome you. I'm really glad you're here, and I'll be with you through the whole program. If you ever get stuck or just want to share a win, message me right here. Talk soon!",
)

// ModuleComplete returns content for a main-track module completion,
// indices 1-21.
func ModuleComplete(index int) (Content, bool) {
	c, ok := moduleComplete[index]
	return c, ok
}

// MiniDiplomaModuleComplete returns content for a mini-diploma module
// completion. Indices 4 and above are reserved for the final-exam flow and
// report not-found.
func MiniDiplomaModuleComplete(index int) (Content, bool) {
	c, ok := miniDiplomaModuleComplete[index]
	return c, ok
}

// WHLessonComplete returns content for a women's-health lesson completion.
// Only milestone lessons are present.
func WHLessonComplete(index int) (Content, bool) {
	c, ok := whLessonComplete[index]
	return c, ok
}

// WHAccessExpiring returns content for an access-expiry reminder keyed by
// days remaining.
func WHAccessExpiring(days string) (Content, bool) {
	c, ok := whAccessExpiring[days]
	return c, ok
}

// WHInactivity returns content for an inactivity reminder keyed by days
// since last activity.
func WHInactivity(days string) (Content, bool) {
	c, ok := whInactivity[days]
	return c, ok
}

// Named returns content for the remaining named triggers.
func Named(trigger string) (Content, bool) {
	c, ok := named[trigger]
	return c, ok
}

// Welcome returns the first-login welcome payload.
func Welcome() Content {
	return welcome
}

// Personalize substitutes the {{firstName}} placeholder.
func Personalize(s, firstName string) string {
	return strings.ReplaceAll(s, "{{firstName}}", firstName)
}
