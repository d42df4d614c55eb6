package service

import (
	"context"

	"github.com/yourplaces/places-server/internal/logger"
	"github.com/yourplaces/places-server/internal/model"
)

// discardMedia removes a stored upload in the background. It runs both as
// compensating cleanup when a request fails after its file was saved, and
// after a place deletion commits. Failures are logged, never surfaced: the
// record state is the source of truth and an orphaned file is harmless.
func discardMedia(ctx context.Context, storage model.MediaStore, log *logger.Logger, key string) {
	if key == "" {
		return
	}
	ctx = context.WithoutCancel(ctx)
	go func() {
		if err := storage.Delete(ctx, key); err != nil {
			log.Error("failed to delete media object",
				"key", key,
				"error", err.Error())
		}
	}()
}
