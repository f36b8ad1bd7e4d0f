// internals/features/school/stats/dto/stats_dto.go
package dto

// StatsResponse : compteurs du tableau de bord de l'école.
type StatsResponse struct {
	NbEleves            int64 `json:"nb_eleves"`
	NbEnseignants       int64 `json:"nb_enseignants"`
	NbClasses           int64 `json:"nb_classes"`
	NbAnnonces          int64 `json:"nb_annonces"`
	NbDemandesEnAttente int64 `json:"nb_demandes_en_attente"`
}
