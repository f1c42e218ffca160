package server

import (
	"net/http"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cookbook-dev/cookbook/pkg/serializer"
	"github.com/cookbook-dev/cookbook/pkg/unit"
)

var categoryTitle = cases.Title(language.English)

// handleUnits handles GET /v1/units, listing the unit catalog grouped by
// category
func (s *Server) handleUnits(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed,
			"Method not allowed", false, nil)
		return
	}

	resp := UnitsResponse{Categories: make(map[string][]UnitInfo)}
	for _, cat := range unit.SupportedCategories() {
		units := s.catalog.UnitsIn(cat)
		infos := make([]UnitInfo, 0, len(units))
		for _, u := range units {
			infos = append(infos, UnitInfo{
				Abbreviation: u.Abbr(),
				Name:         u.Name(),
			})
		}
		resp.Categories[categoryTitle.String(cat.String())] = infos
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}
