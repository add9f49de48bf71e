package capex

import (
	"fmt"
	"strings"
)

// Stages is the ordered procurement pipeline. The labels are the exact values
// stored in the "statut" column; they double as the Kanban column titles.
var Stages = []string{
	"Idée / En Attente",
	"Comité d'Engagement",
	"Rédaction CPS / DA",
	"Processus Achats",
	"Commande Émise",
	"Exécution",
	"Installation & Livraison",
	"Réception Provisoire (PVR)",
	"Projet Clôturé",
}

// ClosedStage is the terminal pipeline stage.
const ClosedStage = "Projet Clôturé"

// ParseStage resolves a stage label case- and space-insensitively to its
// canonical form, the way the board matches the statut column.
func ParseStage(label string) (string, error) {
	want := strings.ToLower(strings.TrimSpace(label))
	for _, s := range Stages {
		if strings.ToLower(s) == want {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown pipeline stage %q", label)
}

// Months holds the forecast bucket keys, in calendar order. They are the
// exact column names of the OrderDetails sheet.
var Months = []string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}

// MonthNames maps a bucket key to its display name.
var MonthNames = map[string]string{
	"jan": "Janvier", "feb": "Février", "mar": "Mars", "apr": "Avril",
	"may": "Mai", "jun": "Juin", "jul": "Juillet", "aug": "Août",
	"sep": "Septembre", "oct": "Octobre", "nov": "Novembre", "dec": "Décembre",
}
