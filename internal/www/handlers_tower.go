package www

import (
	"net/http"
	"time"

	"github.com/example/giro-certo-ops/internal/fleet"
	"github.com/example/giro-certo-ops/internal/livemap"
	"github.com/example/giro-certo-ops/internal/models"
	"github.com/example/giro-certo-ops/internal/session"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	s.render(w, "home.html", s.pageData("home", sess))
}

// handleControlTower serves the map screen shell. The markers themselves are
// drawn client-side by Leaflet from the data endpoint, which the page polls
// on the refresh period.
func (s *Server) handleControlTower(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	data := s.pageData("control-tower", sess)
	data["PollSeconds"] = int(s.cfg.PollInterval.Seconds())
	data["Filter"] = fleet.ParseFilter(r.URL.Query())
	s.render(w, "tower.html", data)
}

// towerPayload is one refresh of the control-tower view.
type towerPayload struct {
	FilterKey    string                 `json:"filterKey"`
	Center       models.Coord           `json:"center"`
	RiderMarkers []livemap.RiderMarker  `json:"riderMarkers"`
	OrderMarkers []livemap.OrderMarker  `json:"orderMarkers"`
	Stats        *models.DashboardStats `json:"stats"`
	Errors       towerErrors            `json:"errors"`
}

type towerErrors struct {
	Stats  bool `json:"stats"`
	Riders bool `json:"riders"`
	Orders bool `json:"orders"`
}

func (s *Server) handleControlTowerData(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	f := fleet.ParseFilter(r.URL.Query())
	view := s.towers.viewFor(sess)
	view.board.Apply(f)

	// Serve the poller's snapshot when it is current for this filter and
	// fresh; otherwise fetch now and install. A snapshot whose filter was
	// superseded while in flight is discarded by the board, never shown.
	snap, ok := view.board.Latest()
	if !ok || time.Since(snap.Taken) > s.cfg.PollInterval {
		fetched := view.service.Snapshot(r.Context(), f)
		if view.board.Install(fetched) {
			snap = fetched
		} else if snap, ok = view.board.Latest(); !ok {
			// Filter moved again mid-fetch and nothing is installed yet;
			// report empty layers rather than data for stale parameters.
			snap = fleet.Snapshot{Filter: f, Key: f.Key()}
		}
	}

	fallback := models.Coord{Lat: s.cfg.FallbackLat, Lng: s.cfg.FallbackLng}
	payload := towerPayload{
		FilterKey:    snap.Key,
		Center:       livemap.ComputeCenter(snap.Riders, snap.Orders, fallback),
		RiderMarkers: livemap.RiderMarkers(snap.Riders),
		OrderMarkers: livemap.OrderMarkers(snap.Orders),
		Stats:        snap.Stats,
		Errors: towerErrors{
			Stats:  snap.StatsErr != nil,
			Riders: snap.RidersErr != nil,
			Orders: snap.OrdersErr != nil,
		},
	}
	writeJSON(w, http.StatusOK, payload)
}
