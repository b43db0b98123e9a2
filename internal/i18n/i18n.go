// Package i18n provides the static string tables for the candidate wizard and
// the admin console in English, Russian and Uzbek.
package i18n

import (
	"os"
	"strings"
)

// Locale identifies one of the supported interface languages.
type Locale string

// Supported locales.
const (
	LocaleEN Locale = "en"
	LocaleRU Locale = "ru"
	LocaleUZ Locale = "uz"
)

// Supported returns true for the three locales the console ships with.
func Supported(code string) bool {
	switch Locale(code) {
	case LocaleEN, LocaleRU, LocaleUZ:
		return true
	}
	return false
}

// Parse resolves a locale code, falling back to the environment language
// (LANG/LC_ALL prefix) and finally to English.
func Parse(code string) Locale {
	if Supported(code) {
		return Locale(code)
	}
	env := os.Getenv("LC_ALL")
	if env == "" {
		env = os.Getenv("LANG")
	}
	env = strings.ToLower(env)
	switch {
	case strings.HasPrefix(env, "ru"):
		return LocaleRU
	case strings.HasPrefix(env, "uz"):
		return LocaleUZ
	}
	return LocaleEN
}

// CandidateStrings holds every string shown on the candidate surface.
type CandidateStrings struct {
	Loading       string
	LoadingFinal  string
	FinalTitle    string
	FinalMsg      string
	BtnStart      string
	LblUpload     string
	AnswerPrompt  string
	LblName       string
	LblPhone      string
	LblEmail      string
	NoFile        string
	FileChosen    string
	ErrFillFields string
	ErrBadPhone   string
	ErrNoCV       string
	ErrTryAgain   string
	ErrStepFailed string
	ErrEmptyAns   string
	ErrSubmit     string
	TimeRemaining string
}

var candidateTables = map[Locale]CandidateStrings{
	LocaleEN: {
		Loading:       "Analyzing your CV...",
		LoadingFinal:  "Finalizing interview...",
		FinalTitle:    "Thank You!",
		FinalMsg:      "Your interview is complete. You will receive an email notification soon. Please check your Inbox and Spam folder.",
		BtnStart:      "Start Interview",
		LblUpload:     "Select CV (PDF/DOCX)",
		AnswerPrompt:  "Type your answer here...",
		LblName:       "Full Name:",
		LblPhone:      "Phone Number:",
		LblEmail:      "Email Address:",
		NoFile:        "File not selected",
		FileChosen:    "Uploaded file: ",
		ErrFillFields: "Please fill in all fields (Name, Phone, Email)",
		ErrBadPhone:   "Please enter a valid Uzbekistan phone number (+998XXXXXXXXX)",
		ErrNoCV:       "Please upload your CV first",
		ErrTryAgain:   "An error occurred. Please try again.",
		ErrStepFailed: "Request failed",
		ErrEmptyAns:   "Please type an answer",
		ErrSubmit:     "Failed to submit answer.",
		TimeRemaining: "Time Remaining",
	},
	LocaleRU: {
		Loading:       "Анализируем ваше CV...",
		LoadingFinal:  "Завершаем интервью...",
		FinalTitle:    "Спасибо!",
		FinalMsg:      "Интервью успешно завершено. В ближайшее время вам придет уведомление на почту. Пожалуйста, проверьте папку «Входящие» и «Спам».",
		BtnStart:      "Начать интервью",
		LblUpload:     "Выберите CV (PDF/DOCX)",
		AnswerPrompt:  "Введите ваш ответ здесь...",
		LblName:       "ФИО:",
		LblPhone:      "Номер телефона:",
		LblEmail:      "Email адрес:",
		NoFile:        "Файл не выбран",
		FileChosen:    "Загружен файл: ",
		ErrFillFields: "Пожалуйста, заполните все поля (ФИО, Телефон, Email)",
		ErrBadPhone:   "Введите корректный номер Узбекистана (+998XXXXXXXXX)",
		ErrNoCV:       "Сначала загрузите CV",
		ErrTryAgain:   "Произошла ошибка. Попробуйте еще раз.",
		ErrStepFailed: "Запрос завершился с ошибкой",
		ErrEmptyAns:   "Пожалуйста, введите ответ",
		ErrSubmit:     "Не удалось отправить ответ.",
		TimeRemaining: "Оставшееся время",
	},
	LocaleUZ: {
		Loading:       "CV tahlil qilinmoqda...",
		LoadingFinal:  "Intervyu yakunlanmoqda...",
		FinalTitle:    "Rahmat!",
		FinalMsg:      "Sizning intervyungiz muvaffaqiyatli yakunlandi. Tez orada elektron pochtangizga xabar keladi. Iltimos, «Inboks» va «Spam» papkalarini tekshiring.",
		BtnStart:      "Intervyuni boshlash",
		LblUpload:     "CV-ni tanlang (PDF/DOCX)",
		AnswerPrompt:  "Javobingizni bu yerga yozing...",
		LblName:       "F.I.SH.:",
		LblPhone:      "Telefon raqami:",
		LblEmail:      "Email manzili:",
		NoFile:        "Fayl tanlanmagan",
		FileChosen:    "Fayl yuklandi: ",
		ErrFillFields: "Iltimos, barcha maydonlarni to'ldiring (Ism, Telefon, Email)",
		ErrBadPhone:   "To'g'ri O‘zbekiston raqamini kiriting (+998XXXXXXXXX)",
		ErrNoCV:       "Avval CV yuklang",
		ErrTryAgain:   "Xatolik yuz berdi. Qayta urinib ko'ring.",
		ErrStepFailed: "So'rovda xatolik yuz berdi",
		ErrEmptyAns:   "Iltimos, javob yozing",
		ErrSubmit:     "Javobni yuborib bo'lmadi.",
		TimeRemaining: "Qolgan vaqt",
	},
}

// Candidate returns the candidate string table for a locale.
func Candidate(l Locale) CandidateStrings {
	if t, ok := candidateTables[l]; ok {
		return t
	}
	return candidateTables[LocaleEN]
}

// AdminStrings holds every string shown on the admin surface.
type AdminStrings struct {
	Title          string
	Subtitle       string
	ThCandidate    string
	ThPhone        string
	ThEmail        string
	ThLang         string
	ThDate         string
	ThStatus       string
	ThScore        string
	ThActions      string
	ViewCV         string
	StatusInvited  string
	StatusRejected string
	StatusReview   string
	StatusPending  string
	UpdateSuccess  string
	AILoading      string
	AIFailed       string
}

var adminTables = map[Locale]AdminStrings{
	LocaleEN: {
		Title:          "Candidates",
		Subtitle:       "Hiring flow management",
		ThCandidate:    "Candidate",
		ThPhone:        "Phone",
		ThEmail:        "Email",
		ThLang:         "Lang",
		ThDate:         "Date",
		ThStatus:       "Status",
		ThScore:        "Score",
		ThActions:      "Actions",
		ViewCV:         "Open CV",
		StatusInvited:  "Invited",
		StatusRejected: "Rejected",
		StatusReview:   "Under review",
		StatusPending:  "Pending",
		UpdateSuccess:  "Status updated successfully!",
		AILoading:      "Generating AI analysis…",
		AIFailed:       "AI analysis failed. Please try again.",
	},
	LocaleRU: {
		Title:          "Кандидаты",
		Subtitle:       "Управление потоком найма",
		ThCandidate:    "Кандидат",
		ThPhone:        "Телефон",
		ThEmail:        "Email",
		ThLang:         "Язык",
		ThDate:         "Дата",
		ThStatus:       "Статус",
		ThScore:        "Баллы",
		ThActions:      "Действия",
		ViewCV:         "Открыть CV",
		StatusInvited:  "Приглашен",
		StatusRejected: "Отклонен",
		StatusReview:   "На проверке",
		StatusPending:  "Ожидание",
		UpdateSuccess:  "Статус успешно обновлен!",
		AILoading:      "Генерируем AI анализ…",
		AIFailed:       "Не удалось выполнить AI анализ. Попробуйте снова.",
	},
	LocaleUZ: {
		Title:          "Nomzodlar",
		Subtitle:       "Yollash oqimini boshqarish",
		ThCandidate:    "Nomzod",
		ThPhone:        "Telefon",
		ThEmail:        "Email",
		ThLang:         "Til",
		ThDate:         "Sana",
		ThStatus:       "Holat",
		ThScore:        "Ball",
		ThActions:      "Harakatlar",
		ViewCV:         "CV-ni ochish",
		StatusInvited:  "Taklif etildi",
		StatusRejected: "Rad etildi",
		StatusReview:   "Ko'rib chiqilmoqda",
		StatusPending:  "Kutilmoqda",
		UpdateSuccess:  "Holat muvaffaqiyatli yangilandi!",
		AILoading:      "AI tahlil yaratilmoqda…",
		AIFailed:       "AI tahlil bajarilmadi. Qayta urinib ko'ring.",
	},
}

// Admin returns the admin string table for a locale.
func Admin(l Locale) AdminStrings {
	if t, ok := adminTables[l]; ok {
		return t
	}
	return adminTables[LocaleEN]
}
