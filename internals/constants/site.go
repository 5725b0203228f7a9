package constants

import "strings"

// Etiqueta de sede que exime la sala física: formación impartida
// en las instalaciones del cliente.
const SiteLabelInCompany = "in-company"

// SiteRequiresRoom indica si la sede del deal exige sala física asignada.
func SiteRequiresRoom(siteLabel string) bool {
	return !strings.EqualFold(strings.TrimSpace(siteLabel), SiteLabelInCompany)
}
