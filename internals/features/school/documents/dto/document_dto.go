// internals/features/school/documents/dto/document_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "monecole_backend/internals/features/school/documents/model"
)

type DocumentResponse struct {
	DocumentID   uuid.UUID `json:"document_id"`
	EcoleID      uuid.UUID `json:"ecole_id"`
	Type         string    `json:"type"`
	NomFichier   string    `json:"nom_fichier"`
	URL          string    `json:"url"`
	ContentType  string    `json:"content_type"`
	Taille       int64     `json:"taille"`
	Statut       string    `json:"statut"`
	ImporteParID uuid.UUID `json:"importe_par_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewDocumentResponse(m *model.DocumentImporteModel) *DocumentResponse {
	if m == nil {
		return nil
	}
	return &DocumentResponse{
		DocumentID:   m.DocumentID,
		EcoleID:      m.DocumentEcoleID,
		Type:         m.DocumentType,
		NomFichier:   m.DocumentNomFichier,
		URL:          m.DocumentURL,
		ContentType:  m.DocumentContentType,
		Taille:       m.DocumentTaille,
		Statut:       m.DocumentStatut,
		ImporteParID: m.DocumentImporteParID,
		CreatedAt:    m.DocumentCreatedAt,
	}
}

func NewDocumentResponses(ms []model.DocumentImporteModel) []*DocumentResponse {
	out := make([]*DocumentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewDocumentResponse(&ms[i]))
	}
	return out
}
