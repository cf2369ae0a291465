package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db}
}

// SumByApplicationIDs returns the summed event points per application.
// Points are summed, never averaged; applications with no attendance are
// simply absent from the map.
func (r *AttendanceRepository) SumByApplicationIDs(ids []uuid.UUID) (map[uuid.UUID]float64, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]float64{}, nil
	}
	var rows []struct {
		ApplicationID uuid.UUID
		Total         float64
	}
	err := r.db.Raw(`
        SELECT application_id, SUM(points) AS total
        FROM event_attendances
        WHERE application_id IN ?
        GROUP BY application_id
    `, ids).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	sums := make(map[uuid.UUID]float64, len(rows))
	for _, row := range rows {
		sums[row.ApplicationID] = row.Total
	}
	return sums, nil
}
