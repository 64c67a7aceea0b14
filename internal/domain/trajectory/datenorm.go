package trajectory

import (
	"strings"
	"time"
)

// Formatos de fecha aceptados una vez removido el componente horario.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
}

// anchorHour: mediodía y no medianoche, para que un offset negativo no corra la fecha al día anterior.
const anchorHour = 12

// Normalizer lleva representaciones de fecha heterogéneas a un instante comparable.
type Normalizer struct {
	loc *time.Location
}

// NewNormalizer usa loc como zona de anclaje; nil significa time.Local.
func NewNormalizer(loc *time.Location) Normalizer {
	if loc == nil {
		loc = time.Local
	}
	return Normalizer{loc: loc}
}

func (n Normalizer) Location() *time.Location {
	if n.loc == nil {
		return time.Local
	}
	return n.loc
}

// Anchor conserva el día calendario de t (en la zona del normalizer) y lo fija a las 12:00.
func (n Normalizer) Anchor(t time.Time) time.Time {
	loc := n.Location()
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, anchorHour, 0, 0, 0, loc)
}

// Parse interpreta "YYYY-MM-DD", con o sin componente horario ("T..." o separado por espacio).
// El horario se descarta. Si no se puede interpretar devuelve (zero, false); nunca hace panic.
func (n Normalizer) Parse(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if i := strings.IndexAny(s, "T "); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		d, err := time.ParseInLocation(layout, s, n.Location())
		if err == nil {
			return n.Anchor(d), true
		}
	}
	return time.Time{}, false
}
