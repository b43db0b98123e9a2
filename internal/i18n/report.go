package i18n

import "strings"

// ReportLabels holds the section labels of the AI report.
type ReportLabels struct {
	Title    string
	Decision string
	Comment  string
	Reasons  string
	NoFlags  string
}

var reportTables = map[Locale]ReportLabels{
	LocaleEN: {
		Title:    "AI Report",
		Decision: "Decision:",
		Comment:  "Comment:",
		Reasons:  "Reasons:",
		NoFlags:  "No flags",
	},
	LocaleRU: {
		Title:    "AI Анализ",
		Decision: "Решение:",
		Comment:  "Комментарий:",
		Reasons:  "Причины:",
		NoFlags:  "Нет замечаний",
	},
	LocaleUZ: {
		Title:    "AI Tahlil",
		Decision: "Qaror:",
		Comment:  "Izoh:",
		Reasons:  "Sabablar:",
		NoFlags:  "Izohlar yo'q",
	},
}

// Report returns the report labels for a locale.
func Report(l Locale) ReportLabels {
	if t, ok := reportTables[l]; ok {
		return t
	}
	return reportTables[LocaleEN]
}

var decisionsRU = map[string]string{
	"Strong Hire": "Настоятельно рекомендую",
	"Hire":        "Нанять",
	"Review":      "На проверку",
	"Reject":      "Отказать",
}

var decisionsUZ = map[string]string{
	"Strong Hire": "Juda tavsiya etiladi",
	"Hire":        "Ishga olish",
	"Review":      "Ko'rib chiqish",
	"Reject":      "Rad etish",
}

// TranslateDecision maps a backend hiring decision into the admin's locale.
// Unknown decisions render verbatim.
func TranslateDecision(l Locale, decision string) string {
	var table map[string]string
	switch l {
	case LocaleRU:
		table = decisionsRU
	case LocaleUZ:
		table = decisionsUZ
	default:
		return decision
	}
	if tr, ok := table[decision]; ok {
		return tr
	}
	return decision
}

// flagTexts maps integrity flag symbols to display text. Columns are Russian
// and Uzbek; there is no English column upstream, so any non-Uzbek locale
// gets the Russian one.
var flagTexts = map[string][2]string{
	// AI detector flags
	"superhuman_typing_speed":   {"Нереальная скорость печати", "G'ayritabiiy yozish tezligi"},
	"fast_typing_suspicion":     {"Подозрительно быстрая печать", "Shubhali tez yozish"},
	"perfect_numbered_list":     {"Идеальные списки (AI)", "Mukammal ro'yxatlar (AI)"},
	"perfect_bullet_points":     {"Идеальные пункты (AI)", "Mukammal punktlar (AI)"},
	"uniform_sentence_lengths":  {"Монотонные предложения", "Bir xil gap uzunligi"},
	"high_marker_density":       {"Много AI-фраз", "Ko'p AI iboralari"},
	"empty_text":                {"Пустой ответ", "Bo'sh javob"},
	"ai_star_formatting":        {"Форматирование через звездочки (*)", "Yulduzchali formatlash (*)"},
	"colon_definitions_pattern": {"Стиль 'Термин: Определение'", "'Termin: Ta'rif' uslubi"},
	"high_repetition_rate":      {"Высокая повторяемость слов", "So'zlar qaytarilishi yuqori"},
	"robot_transitions":         {"Роботизированные связки", "Robotga xos bog'lamlar"},

	// Structure analyzer flags
	"contains_code":            {"Содержит код", "Kod mavjud"},
	"logical_steps_detected":   {"Логические шаги обнаружены", "Mantiqiy qadamlar aniqlandi"},
	"lack_of_explaining_steps": {"Отсутствие объяснений", "Tushuntirishlar yo'q"},
	"comprehensive_answer":     {"Полный ответ", "To'liq javob"},
	"too_short_answer":         {"Слишком короткий ответ", "Juda qisqa javob"},
	"raw_code_no_explanation":  {"Код без объяснений", "Tushuntirishsiz kod"},
	"long_text_no_code":        {"Длинный текст без кода", "Kodsiz uzun matn"},

	// Time behavior flags
	"too_fast_for_hard_question":   {"Слишком быстро для сложного вопроса", "Qiyin savol uchun juda tez"},
	"too_fast_for_medium_question": {"Слишком быстро для среднего вопроса", "O'rta savol uchun juda tez"},
	"suspiciously_short_time":      {"Подозрительно короткое время", "Shubhali qisqa vaqt"},
	"impossible_typing_speed":      {"Невозможная скорость печати", "Imkonsiz yozish tezligi"},
	"extremely_high_typing_speed":  {"Экстремально высокая скорость", "Haddan tashqari yuqori tezlik"},

	// Plagiarism checker flags
	"known_template_detected":     {"Обнаружен известный шаблон", "Ma'lum shablon aniqlandi"},
	"possible_templated_phrasing": {"Возможно шаблонные фразы", "Shablon iboralar bo'lishi mumkin"},
	"high_self_similarity":        {"Высокое самоповторение", "Yuqori o'z-o'zini takrorlash"},

	// Final analyzer global flags
	"HIGH_RISK_OF_CHEATING":    {"ВЫСОКИЙ РИСК ОБМАНА", "ALDASH XAVFI YUQORI"},
	"SYSTEMIC_AI_USAGE_LIKELY": {"СИСТЕМНОЕ ИСПОЛЬЗОВАНИЕ AI", "Tizimli AI foydalanish"},
}

// TranslateFlag renders an integrity flag symbol for the admin's locale.
// Symbols without a table entry render verbatim.
func TranslateFlag(l Locale, flag string) string {
	texts, ok := flagTexts[flag]
	if !ok {
		return flag
	}
	if l == LocaleUZ {
		return texts[1]
	}
	return texts[0]
}

// commentSeparator joins the Russian and Uzbek halves of a stored HR comment.
const commentSeparator = "|||"

// SelectComment picks the locale's half of an HR comment. Comments are stored
// as "russian|||uzbek"; Uzbek selects the second half when present, every
// other locale the first. A comment without the separator is returned whole.
func SelectComment(l Locale, comment string) string {
	parts := strings.Split(comment, commentSeparator)
	if l == LocaleUZ && len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
		return strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(parts[0])
}
