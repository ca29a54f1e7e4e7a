// Package catalog содержит статический каталог магазина: предметы и цены
// по уровням, города доставки, промокоды и телефонные коды стран.
// Данные фиксированы на момент сборки и не имеют поведения.
package catalog

import (
	"strings"

	"github.com/mtw/paperstore/internal/domain"
)

// subjects содержит предметы по уровням
var subjects = map[domain.Level][]domain.Subject{
	domain.LevelOLevel: {
		{ID: "urdu-1", Name: "Urdu – First Language", Code: "3247", Papers: []string{"P1", "P2"}},
		{ID: "urdu-2", Name: "Urdu – Second Language", Code: "3248", Papers: []string{"P1", "P2"}},
		{ID: "english", Name: "English Language", Code: "1123", Papers: []string{"P1", "P2"}},
		{ID: "english-lit", Name: "Literature in English", Code: "2010", Papers: []string{"P1", "P2"}},
		{ID: "biology", Name: "Biology", Code: "5090", Papers: []string{"P1", "P2", "P4"}},
		{ID: "chemistry", Name: "Chemistry", Code: "5070", Papers: []string{"P1", "P2", "P4"}},
		{ID: "physics", Name: "Physics", Code: "5054", Papers: []string{"P1", "P2", "P4"}},
		{ID: "math-d", Name: "Mathematics D", Code: "4024", Papers: []string{"P1", "P2"}},
		{ID: "add-math", Name: "Additional Mathematics", Code: "4037", Papers: []string{"P1", "P2"}},
		{ID: "comb-sci", Name: "Combined Science", Code: "5129", Papers: []string{"P1", "P2", "P3"}},
		{ID: "pak-studies", Name: "Pakistan Studies", Code: "2059", Papers: []string{"P1", "P2"}},
		{ID: "islamiyat", Name: "Islamiyat", Code: "2058", Papers: []string{"P1", "P2"}},
		{ID: "business", Name: "Business Studies", Code: "7115", Papers: []string{"P1", "P2"}},
		{ID: "economics", Name: "Economics", Code: "2281", Papers: []string{"P1", "P2"}},
		{ID: "commerce", Name: "Commerce", Code: "7100", Papers: []string{"P1", "P2"}},
		{ID: "sociology", Name: "Sociology", Code: "2251", Papers: []string{"P1", "P2"}},
		{ID: "comp-sci", Name: "Computer Science", Code: "2210", Papers: []string{"P1", "P2"}},
		{ID: "global-persp", Name: "Global Perspectives", Code: "2069", Papers: []string{"P1"}},
		{ID: "env-mgmt", Name: "Environmental Management", Code: "5014", Papers: []string{"P1", "P2"}},
		{ID: "food-nutrition", Name: "Food & Nutrition", Code: "6065", Papers: []string{"P1", "P2"}},
		{ID: "travel-tour", Name: "Travel & Tourism", Code: "7096", Papers: []string{"P1", "P2"}},
		{ID: "accounting", Name: "Accounting", Code: "7707", Papers: []string{"P1", "P2"}},
	},
	domain.LevelALevel: {
		{ID: "accounting-al", Name: "Accounting", Code: "9706", Papers: []string{"P1", "P2", "P3"}},
		{ID: "biology-al", Name: "Biology", Code: "9700", Papers: []string{"P1", "P2", "P3", "P4", "P5"}},
		{ID: "business-al", Name: "Business Studies", Code: "9609", Papers: []string{"P1", "P2", "P3"}},
		{ID: "chemistry-al", Name: "Chemistry", Code: "9701", Papers: []string{"P1", "P2", "P3", "P4", "P5"}},
		{ID: "comp-sci-al", Name: "Computer Science", Code: "9618", Papers: []string{"P1", "P2", "P3", "P4"}},
		{ID: "economics-al", Name: "Economics", Code: "9708", Papers: []string{"P1", "P2", "P3", "P4"}},
		{ID: "eng-lang-al", Name: "English Language", Code: "9093", Papers: []string{"P1", "P2", "P3", "P4"}},
		{ID: "eng-lit-al", Name: "English Literature", Code: "9695", Papers: []string{"P3", "P4", "P5", "P6"}},
		{ID: "env-mgmt-al", Name: "Environmental Management", Code: "8291", Papers: []string{"P1", "P2"}},
		{ID: "further-math-al", Name: "Further Mathematics", Code: "9231", Papers: []string{"P1", "P2"}},
		{ID: "history-al", Name: "History", Code: "9389", Papers: []string{"P1", "P2", "P3", "P4"}},
		{ID: "law-al", Name: "Law", Code: "9084", Papers: []string{"P1", "P2", "P3", "P4"}},
		{ID: "math-al", Name: "Mathematics", Code: "9709", Papers: []string{"P1", "P3", "S1", "M1"}},
		{ID: "physics-al", Name: "Physics", Code: "9702", Papers: []string{"P1", "P2", "P3", "P4", "P5"}},
		{ID: "psychology-al", Name: "Psychology", Code: "9990", Papers: []string{"P1", "P2", "P3", "P4"}},
		{ID: "sociology-al", Name: "Sociology", Code: "9699", Papers: []string{"P1", "P2", "P3"}},
		{ID: "thinking-skills-al", Name: "Thinking Skills", Code: "9694", Papers: []string{"P1", "P2", "P3", "P4"}},
		{ID: "urdu-al", Name: "Urdu", Code: "9676", Papers: []string{"P2", "P3", "P4"}},
	},
	domain.LevelIGCSE: {
		{ID: "eng-lang", Name: "English Language (First Language)", Code: "0500", Papers: []string{"P1", "P2"}},
		{ID: "eng-lit", Name: "English Literature", Code: "0475", Papers: []string{"P1", "P2", "P3", "P4"}},
		{ID: "urdu-2", Name: "Urdu as a Second Language", Code: "0539", Papers: []string{"P1", "P2"}},
		{ID: "math", Name: "Mathematics (Core and Extended)", Code: "0580", Papers: []string{"P1", "P2", "P3", "P4"}},
		{ID: "add-math", Name: "Additional Mathematics", Code: "0606", Papers: []string{"P1", "P2"}},
		{ID: "biology", Name: "Biology", Code: "0610", Papers: []string{"P1", "P2", "P3", "P4", "P5", "P6"}},
		{ID: "chemistry", Name: "Chemistry", Code: "0620", Papers: []string{"P1", "P2", "P3", "P4", "P5", "P6"}},
		{ID: "physics", Name: "Physics", Code: "0625", Papers: []string{"P1", "P2", "P3", "P4", "P5", "P6"}},
		{ID: "comb-sci", Name: "Combined Science", Code: "0653", Papers: []string{"P1", "P2", "P3", "P4", "P5", "P6"}},
		{ID: "pak-studies", Name: "Pakistan Studies", Code: "0448", Papers: []string{"P1", "P2"}},
		{ID: "islamiyat", Name: "Islamiyat", Code: "0493", Papers: []string{"P1", "P2"}},
		{ID: "business", Name: "Business Studies", Code: "0450", Papers: []string{"P1", "P2"}},
		{ID: "economics", Name: "Economics", Code: "0455", Papers: []string{"P1", "P2"}},
		{ID: "sociology", Name: "Sociology", Code: "0495", Papers: []string{"P1", "P2"}},
		{ID: "global-persp", Name: "Global Perspectives", Code: "0457", Papers: []string{"P1"}},
		{ID: "comp-sci", Name: "Computer Science", Code: "0478", Papers: []string{"P1", "P2"}},
		{ID: "ict", Name: "Information and Communication Technology (ICT)", Code: "0417", Papers: []string{"P1", "P2", "P3"}},
		{ID: "geography", Name: "Geography", Code: "0460", Papers: []string{"P1", "P2"}},
		{ID: "env-mgmt", Name: "Environmental Management", Code: "0680", Papers: []string{"P1", "P2"}},
		{ID: "accounting", Name: "Accounting", Code: "0452", Papers: []string{"P1", "P2"}},
		{ID: "eng-2nd-lang", Name: "English as a Second Language", Code: "0510", Papers: []string{"P2", "P4"}},
	},
}

// notes содержит готовые конспекты по уровням. Цена фиксирована в
// каталоге; для IGCSE конспекты еще не выпущены, список пуст.
var notes = map[domain.Level][]domain.NoteProduct{
	domain.LevelOLevel: {
		{ID: "bio-notes", Name: "Biology SME Notes", Description: "Comprehensive O Level Biology notes covering all topics", Price: 1650},
		{ID: "chem-notes", Name: "Chemistry SME Notes", Description: "Complete O Level Chemistry notes with diagrams", Price: 1250},
		{ID: "math-notes", Name: "Mathematics SME Notes", Description: "Detailed O Level Mathematics notes with solved examples", Price: 2500},
		{ID: "phy-notes", Name: "Physics SME Notes", Description: "Thorough O Level Physics notes with illustrations", Price: 2000},
		{ID: "cs-notes", Name: "Computer Science SME Notes", Description: "Complete O Level Computer Science notes", Price: 1100},
	},
	domain.LevelALevel: {
		{ID: "as-bio-notes", Name: "AS Biology SME Notes", Description: "Comprehensive AS Level Biology notes", Price: 1300},
		{ID: "as-chem-notes", Name: "AS Chemistry SME Notes", Description: "Complete AS Level Chemistry notes", Price: 1750},
		{ID: "as-phy-notes", Name: "AS Physics SME Notes", Description: "Thorough AS Level Physics notes", Price: 1250},
		{ID: "a2-bio-notes", Name: "A Level Biology SME Notes", Description: "Complete A Level Biology notes", Price: 1300},
		{ID: "a2-chem-notes", Name: "A Level Chemistry SME Notes", Description: "Comprehensive A Level Chemistry notes", Price: 1250},
		{ID: "math-p1-notes", Name: "Mathematics Pure 1 (P1) SME Notes", Description: "Detailed Pure Mathematics 1 notes", Price: 1100},
		{ID: "math-p3-notes", Name: "Mathematics Pure 3 (P3) SME Notes", Description: "Comprehensive Pure Mathematics 3 notes", Price: 1250},
		{ID: "math-m1-notes", Name: "Mathematics Mechanics (M1) SME Notes", Description: "Complete Mechanics 1 notes", Price: 420},
		{ID: "math-s1-notes", Name: "Mathematics Statistics (S1) SME Notes", Description: "Thorough Statistics 1 notes", Price: 550},
		{ID: "a2-phy-notes", Name: "A Level Physics SME Notes", Description: "Complete A Level Physics notes", Price: 1250},
		{ID: "as-a2-cs-notes", Name: "AS & A Level Computer Science SME Notes", Description: "Combined AS and A Level CS notes", Price: 800},
	},
	domain.LevelIGCSE: {},
}

// pricing содержит цену за работу за один год, PKR.
// Отсутствие записи означает нулевую цену (работа бесплатна, не ошибка).
var pricing = map[domain.Level]map[string]map[string]int64{
	domain.LevelOLevel: {
		"english":        {"P1": 250, "P2": 130},
		"english-lit":    {"P1": 255, "P2": 130},
		"env-mgmt":       {"P1": 175, "P2": 170},
		"food-nutrition": {"P1": 290, "P2": 290},
		"pak-studies":    {"P1": 90, "P2": 250},
		"islamiyat":      {"P1": 315, "P2": 290},
		"math-d":         {"P1": 240, "P2": 275},
		"physics":        {"P1": 170, "P2": 270, "P4": 145},
		"sociology":      {"P1": 145, "P2": 180},
		"global-persp":   {"P1": 90},
		"urdu-1":         {"P1": 80, "P2": 80},
		"urdu-2":         {"P1": 175, "P2": 175},
		"travel-tour":    {"P1": 105, "P2": 120},
		"accounting":     {"P1": 120, "P2": 330},
		"add-math":       {"P1": 255, "P2": 250},
		"biology":        {"P1": 180, "P2": 240, "P4": 125},
		"business":       {"P1": 290, "P2": 290},
		"chemistry":      {"P1": 160, "P2": 255, "P4": 190},
		"comb-sci":       {"P1": 180, "P2": 320},
		"commerce":       {"P1": 120, "P2": 305},
		"comp-sci":       {"P1": 180, "P2": 225},
		"economics":      {"P1": 110, "P2": 250},
	},
	domain.LevelALevel: {
		"accounting-al":      {"P1": 170, "P2": 250, "P3": 580},
		"biology-al":         {"P1": 300, "P2": 445, "P3": 175, "P4": 515, "P5": 195},
		"business-al":        {"P1": 265, "P2": 375, "P3": 590},
		"chemistry-al":       {"P1": 215, "P2": 270, "P3": 195, "P4": 350, "P5": 155},
		"comp-sci-al":        {"P1": 240, "P2": 330, "P3": 160, "P4": 355},
		"economics-al":       {"P1": 190, "P2": 220, "P3": 180, "P4": 190},
		"env-mgmt-al":        {"P1": 320, "P2": 290},
		"eng-lang-al":        {"P1": 225, "P2": 110, "P3": 160, "P4": 110},
		"eng-lit-al":         {"P3": 270, "P4": 270, "P5": 260, "P6": 385},
		"further-math-al":    {"P1": 305, "P2": 335},
		"history-al":         {"P1": 260, "P2": 355, "P3": 125, "P4": 305},
		"law-al":             {"P1": 140, "P2": 170, "P3": 130, "P4": 125},
		"math-al":            {"P1": 525, "P3": 525, "S1": 365, "M1": 410},
		"physics-al":         {"P1": 290, "P2": 340, "P3": 175, "P4": 370, "P5": 155},
		"psychology-al":      {"P1": 320, "P2": 395, "P3": 400, "P4": 340},
		"sociology-al":       {"P1": 205, "P2": 210, "P3": 175},
		"thinking-skills-al": {"P1": 285, "P2": 180, "P3": 125, "P4": 175},
		"urdu-al":            {"P2": 210, "P3": 210, "P4": 210},
	},
	domain.LevelIGCSE: {
		"global-persp": {"P1": 385},
		"ict":          {"P1": 365},
		"islamiyat":    {"P1": 320, "P2": 300},
		"math":         {"P1": 260, "P4": 435},
		"pak-studies":  {"P1": 60, "P2": 125},
		"physics":      {"P2": 270, "P4": 285, "P6": 255},
		"sociology":    {"P1": 355, "P2": 480},
		"urdu-2":       {"P1": 100, "P2": 100},
		"accounting":   {"P1": 190, "P2": 380},
		"add-math":     {"P1": 365, "P2": 350},
		"biology":      {"P2": 240, "P4": 445, "P5": 250},
		"business":     {"P1": 435, "P2": 321},
		"chemistry":    {"P1": 260, "P2": 395, "P4": 320, "P6": 210},
		"comp-sci":     {"P1": 290, "P2": 365},
		"economics":    {"P1": 160, "P2": 395},
		"eng-lang":     {"P1": 530, "P2": 315},
		"eng-2nd-lang": {"P2": 330, "P4": 145},
		"env-mgmt":     {"P1": 435, "P2": 450},
		"geography":    {"P1": 200, "P2": 250},
	},
}

// Levels возвращает список уровней
func Levels() []domain.Level {
	return []domain.Level{domain.LevelOLevel, domain.LevelALevel, domain.LevelIGCSE}
}

// LevelSubjects возвращает предметы уровня
func LevelSubjects(level domain.Level) ([]domain.Subject, error) {
	list, ok := subjects[level]
	if !ok {
		return nil, domain.ErrUnknownLevel
	}
	return list, nil
}

// Subject возвращает предмет уровня по идентификатору
func Subject(level domain.Level, subjectID string) (*domain.Subject, error) {
	list, ok := subjects[level]
	if !ok {
		return nil, domain.ErrUnknownLevel
	}
	for i := range list {
		if list[i].ID == subjectID {
			return &list[i], nil
		}
	}
	return nil, domain.ErrSubjectNotFound
}

// PaperPrice возвращает цену работы за один год.
// Для работ без прайса возвращается 0.
func PaperPrice(level domain.Level, subjectID, paper string) int64 {
	return pricing[level][subjectID][paper]
}

// SubjectPricing возвращает прайс предмета по работам (может быть пустым)
func SubjectPricing(level domain.Level, subjectID string) map[string]int64 {
	return pricing[level][subjectID]
}

// LevelNotes возвращает готовые конспекты уровня.
// Пустой список — не ошибка: для уровня конспекты еще не выпущены.
func LevelNotes(level domain.Level) ([]domain.NoteProduct, error) {
	result, ok := notes[level]
	if !ok {
		return nil, domain.ErrUnknownLevel
	}
	return result, nil
}

// NoteProduct ищет конспект по идентификатору среди всех уровней
func NoteProduct(productID string) (*domain.NoteProduct, bool) {
	for _, level := range Levels() {
		for i := range notes[level] {
			if notes[level][i].ID == productID {
				return &notes[level][i], true
			}
		}
	}
	return nil, false
}

// PromoByCode ищет промокод без учета регистра
func PromoByCode(code string) (*domain.PromoCode, bool) {
	for i := range promoCodes {
		if strings.EqualFold(promoCodes[i].Code, code) {
			return &promoCodes[i], true
		}
	}
	return nil, false
}

// PromoCodes возвращает всю таблицу промокодов
func PromoCodes() []domain.PromoCode {
	return promoCodes
}

// paymentInstructions содержит реквизиты оплаты по способам
var paymentInstructions = map[domain.PaymentType]domain.PaymentInstructions{
	domain.PaymentTypeEasypaisa: {
		Title: "EasyPaisa Payment Instructions",
		Lines: []string{
			"Account Name: AQSA NOOR MALIK",
			"Account Number: 03297899451",
		},
		Message: "Please send the payment and share the transaction ID with us via WhatsApp at +92 329 7899451",
	},
	domain.PaymentTypeBank: {
		Title: "Bank Transfer Instructions",
		Lines: []string{
			"Account Title: ABDULLAH AZEEM MALIK (M) SHAZIA QADIR MALIK (G)",
			"Bank: Meezan Bank - Askari X Branch",
			"Account Number: 11460106540188",
			"IBAN: PK75MEZN0011460106540188",
		},
		Message: "Please transfer the amount and share the transaction receipt with us via WhatsApp at +92 329 7899451",
	},
}

// PaymentInstructions возвращает реквизиты для способа оплаты
func PaymentInstructions(paymentType domain.PaymentType) (*domain.PaymentInstructions, bool) {
	instructions, ok := paymentInstructions[paymentType]
	if !ok {
		return nil, false
	}
	return &instructions, true
}
