package models

type TicketModel struct {
	ID        uint   `gorm:"primaryKey"`
	OwnerID   uint   `gorm:"not null;index"`
	Subject   string `gorm:"size:200;not null"`
	Message   string `gorm:"type:text;not null"`
	Status    string `gorm:"size:20;not null;index"`
	Version   int    `gorm:"not null;default:1"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type TicketResponseModel struct {
	ID              uint   `gorm:"primaryKey"`
	TicketID        uint   `gorm:"not null;index"`
	AuthorID        uint   `gorm:"not null;index"`
	Message         string `gorm:"type:text;not null"`
	IsStaffResponse bool   `gorm:"not null;default:false"`
	CreatedAt       int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (TicketResponseModel) TableName() string {
	return "ticket_responses"
}
