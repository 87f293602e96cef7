package handlers

import (
	"context"
	"net/http"
	"time"

	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/responses"
	"telecare-service/internal/pkg/exceptions"
	"telecare-service/internal/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type HealthHandler struct {
	Log         *zap.Logger
	MongoClient *mongo.Client
	Redis       *redis.Client
}

func NewHealthHandler(logger *zap.Logger, mongoClient *mongo.Client, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{
		Log:         logger,
		MongoClient: mongoClient,
		Redis:       redisClient,
	}
}

// Check pings every backing store. Any store failing turns the whole answer
// into a 503 so orchestrators stop routing here.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	stores := map[string]string{
		"mongodb": constvars.HealthStoreUp,
		"redis":   constvars.HealthStoreUp,
	}
	healthy := true

	if err := h.MongoClient.Ping(ctx, nil); err != nil {
		stores["mongodb"] = constvars.HealthStoreDown
		healthy = false
		h.Log.Error("health check mongodb ping failed", zap.Error(err))
	}
	if err := h.Redis.Ping(ctx).Err(); err != nil {
		stores["redis"] = constvars.HealthStoreDown
		healthy = false
		h.Log.Error("health check redis ping failed", zap.Error(err))
	}

	status := responses.HealthStatus{
		Status: constvars.HealthStatusHealthy,
		Stores: stores,
	}
	if !healthy {
		status.Status = constvars.HealthStatusDegraded
		utils.BuildErrorResponse(h.Log, w, exceptions.ErrStoreUnreachable(nil))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, status)
}
