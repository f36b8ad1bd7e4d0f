package dto

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "monecole_backend/internals/features/school/receipts/model"
	"monecole_backend/internals/policy"
)

var validate = validator.New()

func TestCreateRecuRequest_ToModel(t *testing.T) {
	ecole := uuid.New()
	emetteur := uuid.New()
	eleve := uuid.New()
	quand := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)

	req := CreateRecuRequest{
		EleveID:      eleve,
		EleveNom:     "Awa Traoré",
		MontantFCFA:  50000,
		TypePaiement: model.PaiementScolarite,
		Description:  "Scolarité janvier",
	}
	req.Normalize()
	require.NoError(t, validate.Struct(&req))

	m := req.ToModel(policy.SessionProfile{
		UserID:      emetteur,
		Role:        "econome",
		EcoleID:     &ecole,
		DisplayName: "M. Koné",
	}, quand)

	assert.Equal(t, ecole, m.RecuEcoleID)
	assert.Equal(t, eleve, m.RecuEleveID)
	assert.Equal(t, int64(50000), m.RecuMontantFCFA)
	assert.Equal(t, model.PaiementScolarite, m.RecuTypePaiement)
	assert.Equal(t, emetteur, m.RecuEmetteurID)
	assert.Equal(t, "M. Koné", m.RecuEmetteurNom)
	assert.Equal(t, model.StatutEmis, m.RecuStatut)
	assert.Contains(t, m.RecuNumero, "REC-20260115-")
}

func TestCreateRecuRequest_MontantInvalide(t *testing.T) {
	base := CreateRecuRequest{
		EleveID:      uuid.New(),
		EleveNom:     "Awa Traoré",
		TypePaiement: model.PaiementCantine,
	}

	zero := base
	zero.MontantFCFA = 0
	assert.Error(t, validate.Struct(&zero))

	negatif := base
	negatif.MontantFCFA = -5000
	assert.Error(t, validate.Struct(&negatif))
}

func TestCreateRecuRequest_TypeInconnu(t *testing.T) {
	req := CreateRecuRequest{
		EleveID:      uuid.New(),
		EleveNom:     "Awa Traoré",
		MontantFCFA:  10000,
		TypePaiement: "cheque",
	}
	assert.Error(t, validate.Struct(&req))
}

func TestUpdateRecuRequest_Columns(t *testing.T) {
	eleve := uuid.New()
	req := UpdateRecuRequest{
		EleveID:      eleve,
		EleveNom:     "Moussa Diarra",
		MontantFCFA:  75000,
		TypePaiement: model.PaiementTransport,
		Description:  "Transport 2e trimestre",
		Statut:       model.StatutEmis,
	}
	req.Normalize()
	require.NoError(t, validate.Struct(&req))

	cols := req.Columns()
	assert.Equal(t, eleve, cols["recu_eleve_id"])
	assert.Equal(t, int64(75000), cols["recu_montant_fcfa"])
	assert.Equal(t, model.PaiementTransport, cols["recu_type_paiement"])
	assert.Equal(t, model.StatutEmis, cols["recu_statut"])
	// Jamais de colonne tenant ou émetteur dans une mise à jour client.
	assert.NotContains(t, cols, "recu_ecole_id")
	assert.NotContains(t, cols, "recu_emetteur_id")
}
