package utils

import (
	"fmt"
	"time"

	"telecare-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.New().String()
}

func GenerateOrderReceipt(appointmentID string) string {
	return fmt.Sprintf("%s_%s", constvars.OrderReceiptLabel, appointmentID)
}

func GenerateFileName(prefix, owner, fileExtension string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("%s_%s_%s%s", prefix, owner, timestamp, fileExtension)
}
