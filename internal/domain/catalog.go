package domain

// DefaultQuantity is used when an equipment entry names equipment but no quantity.
const DefaultQuantity = "1"

// LessonCatalogEntry maps a subject's curriculum number to a lesson title.
type LessonCatalogEntry struct {
	Subject      string
	LessonNumber string
	LessonName   string
}

// EquipmentCatalogEntry maps a subject's curriculum number to the equipment
// the lesson needs.
type EquipmentCatalogEntry struct {
	Subject       string
	LessonNumber  string
	EquipmentName string
	Quantity      string
}
