package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassModel is a school class a student belongs to, e.g. "JSS 1A".
type ClassModel struct {
	ClassID     uuid.UUID `gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_id"`
	ClassName   string    `gorm:"column:class_name;size:50;not null" json:"class_name"`
	ClassLevel  string    `gorm:"column:class_level;size:20;not null" json:"class_level"`
	ClassStream *string   `gorm:"column:class_stream;size:20" json:"class_stream,omitempty"`

	ClassIsActive bool `gorm:"column:class_is_active;not null;default:true" json:"class_is_active"`

	ClassCreatedAt time.Time      `gorm:"column:class_created_at;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"column:class_updated_at;autoUpdateTime" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"-"`
}

func (ClassModel) TableName() string {
	return "classes"
}

func (m *ClassModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassID == uuid.Nil {
		m.ClassID = uuid.New()
	}
	return nil
}
