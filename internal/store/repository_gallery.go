package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-secret-selfie/models"
)

const galleryTable = "stego_images"

var galleryColumns = []string{"id", "created_at", "expires_at", "width", "height", "size", "png"}

type galleryRepository struct {
	*DB
}

// NewGalleryRepository returns a [GalleryRepository] backed by db.
func NewGalleryRepository(db *DB) GalleryRepository {
	return &galleryRepository{DB: db}
}

func (r *galleryRepository) Save(ctx context.Context, image models.GalleryImage) error {
	log := r.logger.GetChildLogger()
	log.Debug().Str("func", "galleryRepository.Save").Stringer("image_id", image.ID).Msg("saving gallery image")

	query, args, err := r.builder().
		Insert(galleryTable).
		Columns(galleryColumns...).
		Values(
			image.ID.String(),
			image.CreatedAt.UTC(),
			image.ExpiresAt.UTC(),
			image.Width,
			image.Height,
			image.Size(),
			image.PNG,
		).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "galleryRepository.Save").Msg("error building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.withRetry(ctx, "save", func(ctx context.Context) error {
		var execErr error
		result, execErr = r.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if r.isUniqueViolation(err) {
			return ErrImageAlreadyExists
		}
		log.Err(err).Str("func", "galleryRepository.Save").Msg("error inserting gallery image")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if rows == 0 {
		return ErrImageNotSaved
	}

	return nil
}

func (r *galleryRepository) Get(ctx context.Context, id uuid.UUID, now time.Time) (models.GalleryImage, error) {
	log := r.logger.GetChildLogger()

	query, args, err := r.builder().
		Select(galleryColumns...).
		From(galleryTable).
		Where(sq.Eq{"id": id.String()}).
		Where(sq.Gt{"expires_at": now.UTC()}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "galleryRepository.Get").Msg("error building select query")
		return models.GalleryImage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		image models.GalleryImage
		size  int
	)
	err = r.withRetry(ctx, "get", func(ctx context.Context) error {
		return r.QueryRowContext(ctx, query, args...).Scan(
			&image.ID,
			&image.CreatedAt,
			&image.ExpiresAt,
			&image.Width,
			&image.Height,
			&size,
			&image.PNG,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.GalleryImage{}, ErrImageNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "galleryRepository.Get").Stringer("image_id", id).Msg("error loading gallery image")
		return models.GalleryImage{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return image, nil
}

func (r *galleryRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	log := r.logger.GetChildLogger()

	query, args, err := r.builder().
		Delete(galleryTable).
		Where(sq.LtOrEq{"expires_at": now.UTC()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.withRetry(ctx, "delete_expired", func(ctx context.Context) error {
		var execErr error
		result, execErr = r.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "galleryRepository.DeleteExpired").Msg("error deleting expired gallery images")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}

func (r *galleryRepository) isUniqueViolation(err error) bool {
	if postgresError(err) == pgerrcode.UniqueViolation {
		return true
	}
	return isSQLiteUniqueViolation(err)
}
