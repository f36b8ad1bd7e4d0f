// internals/helpers/oss/oss_blob_service.go
package helper

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/*
BlobService : façade d'upload/suppression uniforme pour les contrôleurs.
Le coeur ne voit que put/delete sur des octets opaques ; aucun parsing
CSV/XLSX n'a lieu ici.
*/

type BlobService interface {
	// UploadToEcoleDir range le blob sous "<dir>/<ecole_id>/..." et
	// renvoie aussi la clé objet à persister en base.
	UploadToEcoleDir(ctx context.Context, ecoleID uuid.UUID, dir string, fh *multipart.FileHeader) (publicURL, objectKey, contentType string, err error)

	DeleteByObjectKey(ctx context.Context, objectKey string) error
	PublicURL(objectKey string) string
}

type OSSBlobService struct {
	svc *OSSService
}

// NewOSSBlobServiceFromEnv : instance depuis l'ENV. prefix optionnel.
func NewOSSBlobServiceFromEnv(prefix string) (*OSSBlobService, error) {
	s, err := NewOSSServiceFromEnv(prefix)
	if err != nil {
		return nil, err
	}
	return &OSSBlobService{svc: s}, nil
}

func (b *OSSBlobService) UploadToEcoleDir(ctx context.Context, ecoleID uuid.UUID, dir string, fh *multipart.FileHeader) (string, string, string, error) {
	if fh == nil {
		return "", "", "", fiber.NewError(fiber.StatusBadRequest, "Fichier manquant")
	}
	if ecoleID == uuid.Nil {
		return "", "", "", fiber.NewError(fiber.StatusBadRequest, "ecole_id invalide")
	}
	key, ct, err := b.svc.UploadFromFormFileToDir(ctx, fmt.Sprintf("%s/%s", dir, ecoleID), fh)
	if err != nil {
		return "", "", "", fiber.NewError(fiber.StatusBadGateway, "Échec de l'upload vers le stockage")
	}
	return b.svc.PublicURL(key), key, ct, nil
}

func (b *OSSBlobService) DeleteByObjectKey(ctx context.Context, objectKey string) error {
	if objectKey == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Clé objet vide")
	}
	if err := b.svc.DeleteObject(ctx, objectKey); err != nil {
		return fiber.NewError(fiber.StatusBadGateway, fmt.Sprintf("Échec suppression objet: %v", err))
	}
	return nil
}

func (b *OSSBlobService) PublicURL(objectKey string) string { return b.svc.PublicURL(objectKey) }
