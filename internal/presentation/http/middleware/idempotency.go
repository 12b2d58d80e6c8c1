package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sangkips/billdesk-api/internal/domain/entity"
	"github.com/sangkips/billdesk-api/internal/domain/repository"
	"github.com/sangkips/billdesk-api/internal/presentation/http/dto/response"
)

const (
	// IdempotencyKeyHeader is the HTTP header for idempotency keys
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from a stored key
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is how long keys are valid
	IdempotencyKeyTTL = 24 * time.Hour
)

// IdempotencyConfig holds configuration for the idempotency middleware
type IdempotencyConfig struct {
	Repo repository.IdempotencyRepository
	Log  zerolog.Logger
	Now  func() time.Time
}

// responseWriter wraps gin.ResponseWriter to capture the response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response of a write that was already
// processed under the same Idempotency-Key. The key is reserved before the
// handler runs, so a concurrent duplicate is rejected instead of processed
// twice. Reusing a key with a different body is rejected. Requests without
// a key pass through.
func Idempotency(config IdempotencyConfig) gin.HandlerFunc {
	now := config.Now
	if now == nil {
		now = time.Now
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost && c.Request.Method != http.MethodPut {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		accountIDValue, exists := c.Get(AccountIDKey)
		if !exists {
			c.Next()
			return
		}
		accountID, ok := accountIDValue.(uuid.UUID)
		if !ok {
			c.Next()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			response.BadRequest(c, "Could not read request body")
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		sum := sha256.Sum256(body)
		requestHash := hex.EncodeToString(sum[:])

		ctx := c.Request.Context()
		reserved, err := config.Repo.Reserve(ctx, &entity.IdempotencyKey{
			Key:         key,
			AccountID:   accountID,
			Endpoint:    c.Request.Method + " " + c.FullPath(),
			RequestHash: requestHash,
			ExpiresAt:   now().Add(IdempotencyKeyTTL),
		}, now())
		if err != nil {
			config.Log.Warn().Err(err).Str("key", key).Msg("idempotency reservation failed")
			c.Next()
			return
		}
		if !reserved {
			replay(c, config, key, accountID, requestHash)
			return
		}

		blw := &responseWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = blw

		defer func() {
			if rec := recover(); rec != nil {
				_ = config.Repo.Release(ctx, key, accountID)
				panic(rec)
			}
		}()
		c.Next()

		// server failures may be retried
		if c.Writer.Status() >= http.StatusInternalServerError {
			if err := config.Repo.Release(ctx, key, accountID); err != nil {
				config.Log.Warn().Err(err).Str("key", key).Msg("failed to release idempotency key")
			}
			return
		}
		if err := config.Repo.Complete(ctx, key, accountID, c.Writer.Status(), blw.body.String()); err != nil {
			config.Log.Warn().Err(err).Str("key", key).Msg("failed to store idempotency key")
		}
	}
}

// replay answers a request whose key is already taken
func replay(c *gin.Context, config IdempotencyConfig, key string, accountID uuid.UUID, requestHash string) {
	defer c.Abort()

	existing, err := config.Repo.GetByKey(c.Request.Context(), key, accountID)
	if err != nil {
		config.Log.Warn().Err(err).Str("key", key).Msg("idempotency lookup failed")
		response.ErrorWithCode(c, http.StatusServiceUnavailable, "Backend unavailable")
		return
	}

	switch {
	case existing == nil || existing.RequestHash != requestHash:
		response.ErrorWithCode(c, http.StatusConflict, "Idempotency-Key was already used with a different request")
	case existing.InFlight():
		response.ErrorWithCode(c, http.StatusConflict, "A request with this Idempotency-Key is still being processed")
	default:
		c.Header(IdempotencyReplayedHeader, "true")
		c.Data(existing.ResponseCode, "application/json; charset=utf-8", []byte(existing.ResponseBody))
	}
}
