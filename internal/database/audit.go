package database

import "issue-tracker/internal/models"

// CreateAuditLog appends one entry to the audit trail. Failures are ignored:
// the trail is advisory and must never fail the mutation it describes.
func CreateAuditLog(userID uint, entity string, entityID uint, action, details string) {
	if DB == nil {
		return
	}
	record := models.AuditLog{
		UserID:   userID,
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Details:  details,
	}
	_ = DB.Create(&record).Error
}
