package models

type ReviewModel struct {
	ID        uint   `gorm:"primaryKey"`
	FullName  string `gorm:"size:100;not null"`
	Phone     string `gorm:"size:30"`
	Email     string `gorm:"size:255;index"`
	Message   string `gorm:"type:text;not null"`
	Status    string `gorm:"size:20;not null;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ReviewModel) TableName() string {
	return "reviews"
}
