// Package entities defines the database schema types.
package entities

import "time"

// Room is the persistence entity for tracked agent rooms.
type Room struct {
	ID             uint       `gorm:"primaryKey"`
	RoomName       string     `gorm:"type:varchar(100);uniqueIndex;not null"`
	ExternalRoomID string     `gorm:"type:varchar(100)"`
	AgentName      string     `gorm:"type:varchar(50);index;not null"`
	OwnerUserID    string     `gorm:"type:varchar(100);index"`
	Status         string     `gorm:"type:varchar(20);index;not null;default:active"`
	TimeoutMinutes int        `gorm:"not null"`
	CreatedAt      time.Time  `gorm:"autoCreateTime"`
	JoinedAt       *time.Time `gorm:""`
	LeftAt         *time.Time `gorm:""`
	ChatDuration   int        `gorm:"not null;default:0"` // seconds
	ClosedAt       *time.Time `gorm:""`
}

// TableName overrides the default table name.
func (Room) TableName() string {
	return "ai_voice_rooms"
}
