package recon

import (
	"math"
	"strconv"

	"github.com/google/uuid"

	"opsrecon/internal/source"
)

// Candidate raw field names per concern, tried in order after key
// normalization. The two sources never agreed on a header vocabulary, so
// every concern carries the spellings seen in production exports.
var (
	dateFields       = []string{"DATE", "DATE INTERVENTION"}
	categoryFields   = []string{"TYPE", "EVENEMENT"}
	technicianFields = []string{"RESPONSABLE", "TECHNICIEN"}
	durationFields   = []string{"DUREE", "DUREE (H)"}
	clockFields      = []string{"HEURE", "HEURE DEBUT"}
	dossierFields    = []string{"DOSSIER", "LIBELLE"}
	userFields       = []string{"NB_UTILISATEURS", "UTILISATEURS"}
)

// defaultDossier is the display label used when a record carries no dossier
// field, kept in the source data's language.
const defaultDossier = "Inconnu"

// BuildStats accumulates per-run counts and the raw field names the builder
// detected, for the diagnostic log.
type BuildStats struct {
	Kept               int
	RejectedIrrelevant int
	RejectedNoDate     int
	DetectedFields     map[string]string
}

// Builder converts normalized raw records from one dataset into typed
// Events.
type Builder struct {
	resolver   *Resolver
	classifier *Classifier
	namespace  uuid.UUID
	stats      BuildStats
}

// NewBuilder creates a Builder for the named dataset. The name seeds the
// event ID namespace, so re-running the engine on identical input yields
// identical IDs: reconciliation must be a pure recomputation.
func NewBuilder(dataset string, resolver *Resolver, classifier *Classifier) *Builder {
	return &Builder{
		resolver:   resolver,
		classifier: classifier,
		namespace:  uuid.NewSHA1(uuid.NameSpaceOID, []byte(dataset)),
		stats:      BuildStats{DetectedFields: make(map[string]string)},
	}
}

// Stats returns the counts accumulated so far.
func (b *Builder) Stats() BuildStats {
	return b.stats
}

// Build converts one raw record into an Event. Records whose category matches
// no relevance rule, or whose date does not parse, are dropped (ok=false) and
// counted; every surviving field failure degrades to its documented fallback
// instead of failing the record.
func (b *Builder) Build(raw source.RawRecord) (Event, bool) {
	rec := source.NormalizeFields(raw)

	category, catField, _ := rec.StringField(categoryFields...)
	b.detect("category", catField)

	scheduled, relevant := b.classifier.Classify(category)
	if !relevant {
		b.stats.RejectedIrrelevant++
		return Event{}, false
	}

	dateVal, dateField, _ := rec.Field(dateFields...)
	day, ok := source.ParseDay(dateVal)
	if !ok {
		b.stats.RejectedNoDate++
		return Event{}, false
	}
	b.detect("date", dateField)

	techVal, techField, _ := rec.Field(technicianFields...)
	b.detect("technician", techField)

	durVal, durField, _ := rec.Field(durationFields...)
	b.detect("duration", durField)
	duration := source.ParseDurationHours(durVal)

	clock, clockField, _ := rec.StringField(clockFields...)
	b.detect("clock", clockField)

	dossier, dossierField, ok := rec.StringField(dossierFields...)
	if !ok || dossier == "" {
		dossier = defaultDossier
	}
	b.detect("dossier", dossierField)

	users := 1
	if v, userField, ok := rec.Field(userFields...); ok {
		b.detect("users", userField)
		if n, ok := source.ParseCount(v); ok {
			users = n
		}
	}

	e := Event{
		ID:          uuid.NewSHA1(b.namespace, []byte(strconv.Itoa(b.stats.Kept))).String(),
		Date:        day,
		Day:         day.Format("2006-01-02"),
		Month:       day.Format("2006-01"),
		Technician:  b.resolver.Resolve(techVal),
		Category:    category,
		Dossier:     dossier,
		Users:       users,
		IsScheduled: scheduled,
		Duration:    duration,
		TimeRange:   source.BuildTimeRange(day, clock, duration),
	}

	if scheduled {
		e.NetCapacity = duration
	} else {
		e.NetNeed = math.Max(duration, baselineHours(users))
	}

	b.stats.Kept++
	return e, true
}

func (b *Builder) detect(concern, field string) {
	if field == "" {
		return
	}
	if _, seen := b.stats.DetectedFields[concern]; !seen {
		b.stats.DetectedFields[concern] = field
	}
}

// baselineHours is the minimum effective demand of a technical intervention:
// one hour, plus ten minutes per affected user beyond the fifth.
func baselineHours(users int) float64 {
	return 1.0 + math.Max(0, float64(users-5))*(10.0/60.0)
}
