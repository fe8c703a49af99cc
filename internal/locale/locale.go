// Package locale holds every user-facing string in the two supported
// languages. Persian is the default and the fallback.
package locale

import (
	"fmt"

	"github.com/samafzali11/bale-aibot/internal/domain"
)

// Text is one message localized in both supported languages
type Text struct {
	Fa string
	En string
}

// In returns the text for lang, falling back to Persian
func (t Text) In(lang domain.Language) string {
	if lang == domain.LangEn {
		return t.En
	}
	return t.Fa
}

// ChooseLanguage is bilingual on purpose: it is shown before a language is known
const ChooseLanguage = "لطفاً زبان خود را انتخاب کنید / Please choose your language:"

var (
	JoinPrompt = Text{
		Fa: "لطفاً برای استفاده از ربات در کانال زیر عضو شوید:",
		En: "Please join the channel below to use the bot:",
	}
	BtnChannel = Text{
		Fa: "کانال هوش مصنوعی",
		En: "AI Channel",
	}
	BtnCheckJoin = Text{
		Fa: "ثبت و بررسی عضویت",
		En: "Check Membership",
	}

	MainMenu = Text{
		Fa: "سلام! 👋\nبه ربات هوشمند خوش آمدید!\nهر سؤالی داری، بگو تا کمکت کنم 🚀",
		En: "Hi! 👋\nWelcome to the smart bot!\nAsk anything, I'm here to help 🚀",
	}
	BtnChatbot = Text{
		Fa: "چت‌بات",
		En: "Chat Bot",
	}
	BtnSupport = Text{
		Fa: "پشتیبانی",
		En: "Support",
	}
	BtnAbout = Text{
		Fa: "درباره ربات",
		En: "About Bot",
	}
	BtnChangeLang = Text{
		Fa: "تغییر زبان",
		En: "Change Language",
	}

	ChooseNewLanguage = Text{
		Fa: "زبان جدید را انتخاب کنید:",
		En: "Choose new language:",
	}
	About = Text{
		Fa: "🤖 این ربات با هوش مصنوعی واقعی کار می‌کنه و می‌تونه به هر سؤالی جواب بده.\nبا لحن دوستانه و صمیمی باهات حرف می‌زنه 😊",
		En: "🤖 This bot uses real AI and can answer any question.\nFriendly and warm tone 😊",
	}
	BtnBack = Text{
		Fa: "بازگشت",
		En: "Back",
	}

	SupportIntro = Text{
		Fa: "هر چی می‌خوای به پشتیبانی بفرستی همین‌جا بفرست.\nوقتی تموم شد دکمه زیر رو بزن:",
		En: "Send anything to support here.\nWhen done click below:",
	}
	BtnSendSupport = Text{
		Fa: "ارسال به پشتیبانی",
		En: "Send to Support",
	}
	BtnBackToMenu = Text{
		Fa: "برگشت به منو",
		En: "Back to Menu",
	}
	NothingToSend = Text{
		Fa: "هیچ پیامی برای ارسال وجود ندارد!",
		En: "No message to send!",
	}
	TicketSent = Text{
		Fa: "پیامت با موفقیت ارسال شد ✓",
		En: "Message sent ✓",
	}
	Received = Text{
		Fa: "دریافت شد ✅",
		En: "Received ✅",
	}

	ChatbotIntro = Text{
		Fa: "الان می‌تونی هر سؤالی داری تایپ کنی، هوش مصنوعی جواب می‌ده 😊\nبرای خروج:",
		En: "Ask anything now, AI will answer 😊\nTo exit:",
	}
	BtnExitChatbot = Text{
		Fa: "خروج از چت‌بات",
		En: "Exit Chatbot",
	}
	AITimeout = Text{
		Fa: "متأسفم، پاسخ هوش مصنوعی بیش از ۴۵ ثانیه طول کشید 😔\nبعداً امتحان کن.",
		En: "Sorry, AI took longer than 45 seconds 😔\nTry later.",
	}
	AIFailure = Text{
		Fa: "متأسفانه مشکلی در ارتباط با هوش مصنوعی پیش آمد 😅\nبعداً امتحان کن.",
		En: "Problem connecting to AI 😅\nTry later.",
	}

	UseMenuHint = Text{
		Fa: "از منوی اصلی استفاده کن یا /start بزن 😊",
		En: "Use the main menu or send /start 😊",
	}
	GenericError = Text{
		Fa: "مشکلی پیش آمد. لطفاً بعداً امتحان کنید.",
		En: "Something went wrong. Please try again later.",
	}

	NoUsername = Text{
		Fa: "ندارد",
		En: "none",
	}
	TicketTrailer = Text{
		Fa: "برای پاسخ مستقیم دکمه زیر را بزن.",
		En: "Use the button below to reply directly.",
	}
	BtnReplyToUser = Text{
		Fa: "پاسخ به کاربر",
		En: "Reply to user",
	}

	ReplyIntro = Text{
		Fa: "پاسخ خود را همین‌جا بفرست.\nوقتی تموم شد دکمه زیر رو بزن:",
		En: "Send your reply here.\nWhen done click below:",
	}
	BtnSendReply = Text{
		Fa: "ارسال پاسخ",
		En: "Send Reply",
	}
	ReplySent = Text{
		Fa: "پاسخ با موفقیت ارسال شد ✓",
		En: "Reply sent ✓",
	}
	ReplyFromSupport = Text{
		Fa: "📩 پاسخ پشتیبانی را دریافت کردید.",
		En: "📩 You received a reply from support.",
	}
)

// TicketHeader identifies the sender of a forwarded ticket to the operator
func TicketHeader(lang domain.Language, userID int64, username string) string {
	if username == "" {
		username = NoUsername.In(lang)
	}
	header := Text{
		Fa: "پیام جدید از کاربر %d (@%s)",
		En: "New message from user %d (@%s)",
	}
	return fmt.Sprintf(header.In(lang), userID, username)
}
