// Package room implements the room persistence contract on PostgreSQL.
package room

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "agentvoice/room-api/internal/domain/room"
	"agentvoice/room-api/internal/infrastructure/database/entities"
	"agentvoice/room-api/internal/utils/platformerrors"
)

// Repository implements domain room.Store on GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a room repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Insert persists a new room row.
func (r *Repository) Insert(ctx context.Context, m *domain.Room) error {
	entity := toEntity(m)
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrRoomExists
		}
		return platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "insert room", err, "")
	}
	return nil
}

// GetByName retrieves a room by its unique name.
func (r *Repository) GetByName(ctx context.Context, roomName string) (*domain.Room, error) {
	var entity entities.Room
	err := r.db.WithContext(ctx).Where("room_name = ?", roomName).First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrRoomNotFound
	}
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "load room", err, "")
	}
	return toDomain(&entity), nil
}

// ConditionalUpdate applies fields in a single UPDATE guarded by the expected
// status, so concurrent closers cannot both win.
func (r *Repository) ConditionalUpdate(ctx context.Context, roomName string, expected domain.Status, fields domain.Update) (bool, error) {
	values := map[string]any{}
	if fields.Status != nil {
		values["status"] = string(*fields.Status)
	}
	if fields.ClosedAt != nil {
		values["closed_at"] = *fields.ClosedAt
	}
	if fields.LeftAt != nil {
		values["left_at"] = *fields.LeftAt
	}
	if fields.ChatDuration != nil {
		values["chat_duration"] = *fields.ChatDuration
	}
	if len(values) == 0 {
		return false, nil
	}

	res := r.db.WithContext(ctx).Model(&entities.Room{}).
		Where("room_name = ? AND status = ?", roomName, string(expected)).
		Updates(values)
	if res.Error != nil {
		return false, platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "conditional update room", res.Error, "")
	}
	return res.RowsAffected > 0, nil
}

// SetJoined records first occupancy if not yet recorded.
func (r *Repository) SetJoined(ctx context.Context, roomName string, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&entities.Room{}).
		Where("room_name = ? AND status = ? AND joined_at IS NULL", roomName, string(domain.StatusActive)).
		Update("joined_at", at)
	if res.Error != nil {
		return false, platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "set joined", res.Error, "")
	}
	return res.RowsAffected > 0, nil
}

// SetLeft records departure and chat duration if not yet recorded.
func (r *Repository) SetLeft(ctx context.Context, roomName string, at time.Time, chatDuration int) (bool, error) {
	res := r.db.WithContext(ctx).Model(&entities.Room{}).
		Where("room_name = ? AND status = ? AND left_at IS NULL", roomName, string(domain.StatusActive)).
		Updates(map[string]any{
			"left_at":       at,
			"chat_duration": chatDuration,
		})
	if res.Error != nil {
		return false, platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "set left", res.Error, "")
	}
	return res.RowsAffected > 0, nil
}

// ListActive returns all rooms currently in the active state.
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Room, error) {
	var rows []entities.Room
	err := r.db.WithContext(ctx).
		Where("status = ?", string(domain.StatusActive)).
		Find(&rows).Error
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "list active rooms", err, "")
	}

	rooms := make([]*domain.Room, 0, len(rows))
	for i := range rows {
		rooms = append(rooms, toDomain(&rows[i]))
	}
	return rooms, nil
}

func toEntity(m *domain.Room) *entities.Room {
	return &entities.Room{
		RoomName:       m.RoomName,
		ExternalRoomID: m.ExternalRoomID,
		AgentName:      m.AgentName,
		OwnerUserID:    m.OwnerUserID,
		Status:         string(m.Status),
		TimeoutMinutes: m.TimeoutMinutes,
		CreatedAt:      m.CreatedAt,
		JoinedAt:       m.JoinedAt,
		LeftAt:         m.LeftAt,
		ChatDuration:   m.ChatDuration,
		ClosedAt:       m.ClosedAt,
	}
}

func toDomain(e *entities.Room) *domain.Room {
	return &domain.Room{
		RoomName:       e.RoomName,
		ExternalRoomID: e.ExternalRoomID,
		AgentName:      e.AgentName,
		OwnerUserID:    e.OwnerUserID,
		Status:         domain.Status(e.Status),
		TimeoutMinutes: e.TimeoutMinutes,
		CreatedAt:      e.CreatedAt,
		JoinedAt:       e.JoinedAt,
		LeftAt:         e.LeftAt,
		ChatDuration:   e.ChatDuration,
		ClosedAt:       e.ClosedAt,
	}
}
