// internals/features/school/receipts/model/recu_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatutEmis   = "emis"
	StatutAnnule = "annule"
)

const (
	PaiementInscription = "inscription"
	PaiementScolarite   = "scolarite"
	PaiementCantine     = "cantine"
	PaiementTransport   = "transport"
	PaiementEvenement   = "evenement"
	PaiementAutre       = "autre"
)

// RecuModel : reçu de paiement. Montant en francs CFA entiers,
// jamais en flottant.
type RecuModel struct {
	RecuID      uuid.UUID `json:"recu_id" gorm:"column:recu_id;type:uuid;default:gen_random_uuid();primaryKey"`
	RecuEcoleID uuid.UUID `json:"recu_ecole_id" gorm:"column:recu_ecole_id;type:uuid;not null;index"`

	RecuNumero string `json:"recu_numero" gorm:"column:recu_numero;type:varchar(40);not null;uniqueIndex"`

	RecuEleveID  uuid.UUID `json:"recu_eleve_id" gorm:"column:recu_eleve_id;type:uuid;not null;index"`
	RecuEleveNom string    `json:"recu_eleve_nom" gorm:"column:recu_eleve_nom;type:varchar(120);not null;default:''"`

	RecuMontantFCFA  int64  `json:"recu_montant_fcfa" gorm:"column:recu_montant_fcfa;type:bigint;not null"`
	RecuTypePaiement string `json:"recu_type_paiement" gorm:"column:recu_type_paiement;type:varchar(30);not null"`
	RecuDescription  string `json:"recu_description" gorm:"column:recu_description;type:text;not null;default:''"`

	RecuEmetteurID  uuid.UUID `json:"recu_emetteur_id" gorm:"column:recu_emetteur_id;type:uuid;not null"`
	RecuEmetteurNom string    `json:"recu_emetteur_nom" gorm:"column:recu_emetteur_nom;type:varchar(120);not null;default:''"`

	RecuStatut string `json:"recu_statut" gorm:"column:recu_statut;type:varchar(20);not null;default:'emis'"`

	RecuCreatedAt time.Time      `json:"recu_created_at" gorm:"column:recu_created_at;autoCreateTime"`
	RecuUpdatedAt time.Time      `json:"recu_updated_at" gorm:"column:recu_updated_at;autoUpdateTime"`
	RecuDeletedAt gorm.DeletedAt `json:"-" gorm:"column:recu_deleted_at;index"`
}

func (RecuModel) TableName() string { return "recus_paiement" }
