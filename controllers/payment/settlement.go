package paymentController

import (
	"encoding/json"
	"errors"
	"fithub/database"
	"fithub/middleware"
	"fithub/models"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	errClassMissing = errors.New("one or more classes no longer exist")
	errNoSeats      = errors.New("one or more classes have no seats left")
)

// SavePaymentInfo settles a completed payment: it bumps each purchased
// class's counters, records the enrollment, clears the purchased cart rows
// and writes the payment receipt. The four writes run inside one database
// transaction, so a failure anywhere leaves no partial state behind.
//
// The unique transaction_id on payments is the idempotency marker: a retry
// with the same transaction ID is refused before any mutation, so counters
// are never double-applied.
func SavePaymentInfo(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok || email == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedPaymentInfo").(*struct {
		ClassesID     []uint  `json:"classesId"`
		UserEmail     string  `json:"userEmail"`
		TransactionID string  `json:"transactionId"`
		Price         float64 `json:"price"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Settlement runs only on the caller's own behalf
	if reqData.UserEmail != email {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only settle your own payments!", nil)
	}

	// Optional single-item mode: only the named cart row is cleared
	singleClassID := 0
	if raw := c.Query("classId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid classId query parameter!", nil)
		}
		singleClassID = id
	}

	db := database.Database.Db

	// Idempotency guard
	var existing models.Payment
	if err := db.Where("transaction_id = ?", reqData.TransactionID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Transaction already processed!", fiber.Map{
			"transactionId": existing.TransactionID,
		})
	}

	classIDsJSON, err := json.Marshal(reqData.ClassesID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	var (
		enrollment  models.Enrollment
		payment     models.Payment
		deletedRows int64
		updatedRows int64
	)

	err = db.Transaction(func(tx *gorm.DB) error {
		var classes []models.Class
		if err := tx.Where("id IN ?", reqData.ClassesID).Find(&classes).Error; err != nil {
			return err
		}
		if len(classes) != len(reqData.ClassesID) {
			return errClassMissing
		}

		// Per-class atomic increments, guarded so a seat count never goes
		// below zero. A stale read can never be written back here.
		update := tx.Model(&models.Class{}).
			Where("id IN ? AND available_seats > 0", reqData.ClassesID).
			UpdateColumns(map[string]interface{}{
				"total_enrolled":  gorm.Expr("total_enrolled + 1"),
				"available_seats": gorm.Expr("available_seats - 1"),
			})
		if update.Error != nil {
			return update.Error
		}
		if update.RowsAffected != int64(len(reqData.ClassesID)) {
			return errNoSeats
		}
		updatedRows = update.RowsAffected

		enrollment = models.Enrollment{
			UserEmail:     reqData.UserEmail,
			TransactionID: reqData.TransactionID,
			Classes:       classes,
		}
		// Omit the class rows themselves, only the join rows are new
		if err := tx.Omit("Classes.*").Create(&enrollment).Error; err != nil {
			return err
		}

		cartQuery := tx.Unscoped().Where("user_email = ?", reqData.UserEmail)
		if singleClassID != 0 {
			cartQuery = cartQuery.Where("class_id = ?", singleClassID)
		} else {
			cartQuery = cartQuery.Where("class_id IN ?", reqData.ClassesID)
		}
		deleted := cartQuery.Delete(&models.CartItem{})
		if deleted.Error != nil {
			return deleted.Error
		}
		deletedRows = deleted.RowsAffected

		payment = models.Payment{
			UserEmail:     reqData.UserEmail,
			TransactionID: reqData.TransactionID,
			Price:         reqData.Price,
			ClassIDs:      datatypes.JSON(classIDsJSON),
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, errClassMissing):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "One or more classes no longer exist!", nil)
		case errors.Is(err, errNoSeats):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "One or more classes have no seats left!", nil)
		default:
			log.Printf("Settlement failed for transaction %s: %v", reqData.TransactionID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Settlement failed!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment settled successfully!", fiber.Map{
		"paymentResult": fiber.Map{
			"paymentId":     payment.ID,
			"transactionId": payment.TransactionID,
		},
		"enrolledResult": fiber.Map{
			"enrollmentId": enrollment.ID,
			"classCount":   len(enrollment.Classes),
		},
		"deletedResult": fiber.Map{
			"deletedCount": deletedRows,
		},
		"updatedResult": fiber.Map{
			"modifiedCount": updatedRows,
		},
	})
}
