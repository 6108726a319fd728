/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package field builds the ordered list of competitors for a knockout: who
// plays, at what rating, and in which bracket slot.
package field

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/mikeb26/bitbracket/bcc"
	"github.com/mikeb26/bitbracket/bitbracket"
	"github.com/mikeb26/bitbracket/uschess"
)

// Entrant is one competitor in a knockout field.
type Entrant struct {
	Name    string        `json:"name" yaml:"name"`
	UscfID  uschess.MemID `json:"uscfId,omitempty" yaml:"uscfId,omitempty"`
	Rating  int           `json:"rating" yaml:"rating"`
	Section string        `json:"section,omitempty" yaml:"section,omitempty"`
}

func (e Entrant) String() string {
	if e.Rating == 0 {
		return fmt.Sprintf("%v(unrated)", e.Name)
	}
	return fmt.Sprintf("%v(%v)", e.Name, e.Rating)
}

// fieldFile is the wrapped form of an entrant file; a bare list is accepted
// as well.
type fieldFile struct {
	Entrants []Entrant `json:"entrants" yaml:"entrants"`
}

// LoadFile reads entrants from a .json, .yaml or .yml file. The file holds
// either a list of entrants or an object with an "entrants" list. Order is
// preserved, so a file that is already in bracket order can be played as-is.
func LoadFile(path string) ([]Entrant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("field.load: %w", err)
	}

	var entrants []Entrant
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		entrants, err = decodeJSON(data)
	case ".yaml", ".yml":
		entrants, err = decodeYAML(data)
	default:
		return nil, fmt.Errorf("field.load: unsupported file type %q for %v",
			ext, path)
	}
	if err != nil {
		return nil, fmt.Errorf("field.load: parsing %v: %w", path, err)
	}
	if len(entrants) == 0 {
		return nil, fmt.Errorf("field.load: no entrants in %v", path)
	}
	for i, e := range entrants {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("field.load: entrant %v in %v has no name",
				i, path)
		}
	}

	return entrants, nil
}

func decodeJSON(data []byte) ([]Entrant, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var entrants []Entrant
		err := json.Unmarshal(data, &entrants)
		return entrants, err
	}
	var ff fieldFile
	err := json.Unmarshal(data, &ff)
	return ff.Entrants, err
}

func decodeYAML(data []byte) ([]Entrant, error) {
	var entrants []Entrant
	if err := yaml.Unmarshal(data, &entrants); err == nil {
		return entrants, nil
	}
	var ff fieldFile
	err := yaml.UnmarshalStrict(data, &ff)
	return ff.Entrants, err
}

// FromEntries converts club registrations into entrants. A non-empty section
// keeps only the entries registered in that section (case-insensitive).
func FromEntries(entries []bcc.Entry, section string) []Entrant {
	var entrants []Entrant
	for _, e := range entries {
		if section != "" && !strings.EqualFold(e.SectionName, section) {
			continue
		}
		entrants = append(entrants, Entrant{
			Name:    e.DisplayName(),
			UscfID:  uschess.MemID(e.UscfID),
			Rating:  bcc.RatingFromString(e.PrimaryRating),
			Section: e.SectionName,
		})
	}

	return entrants
}

// ByRating sorts entrants highest rated first, breaking ties by name.
func ByRating(entrants []Entrant) []Entrant {
	sorted := append([]Entrant(nil), entrants...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Rating != sorted[j].Rating {
			return sorted[i].Rating > sorted[j].Rating
		}
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}

// Top returns the k highest rated entrants, highest first. k <= 0 or k
// beyond the field size returns every entrant.
func Top(entrants []Entrant, k int) []Entrant {
	sorted := ByRating(entrants)
	if k > 0 && k < len(sorted) {
		sorted = sorted[:k]
	}
	return sorted
}

// TopInOrder returns the k highest rated entrants in their listed order.
// k <= 0 or k beyond the field size returns every entrant.
func TopInOrder(entrants []Entrant, k int) []Entrant {
	keep := make(map[Entrant]int)
	for _, e := range Top(entrants, k) {
		keep[e]++
	}

	var kept []Entrant
	for _, e := range entrants {
		if keep[e] > 0 {
			keep[e]--
			kept = append(kept, e)
		}
	}
	return kept
}

// RefreshRatings replaces each entrant's rating with the member's current
// regular rating. Entrants without a USCF id, or unrated in the regular
// system, keep the rating they registered with.
func RefreshRatings(ctx context.Context, client *uschess.Client,
	entrants []Entrant) ([]Entrant, error) {

	var ids []uschess.MemID
	for _, e := range entrants {
		if e.UscfID != 0 {
			ids = append(ids, e.UscfID)
		}
	}

	ratings, err := client.FetchRatings(ctx, ids, uschess.Regular)
	if err != nil {
		return nil, fmt.Errorf("field.refresh: %w", err)
	}

	refreshed := append([]Entrant(nil), entrants...)
	for i, e := range refreshed {
		if r, ok := ratings[e.UscfID]; ok {
			refreshed[i].Rating = r
		}
	}

	return refreshed, nil
}

// validate wraps bitbracket's field rules with a friendlier message.
func validate(entrants []Entrant) error {
	if err := bitbracket.ValidateTeams(entrants); err != nil {
		return fmt.Errorf("field of %v entrants cannot be played as a knockout without byes: %w",
			len(entrants), err)
	}
	return nil
}

// ParseList reads a comma separated list of entrants, each either a bare
// name or "name:rating", e.g. "Hoy:2210, Brown:1559, Public, Player".
func ParseList(s string) ([]Entrant, error) {
	var entrants []Entrant
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		e := Entrant{Name: item}
		if name, rating, ok := strings.Cut(item, ":"); ok {
			r, err := strconv.Atoi(strings.TrimSpace(rating))
			if err != nil {
				return nil, fmt.Errorf("field.parse: invalid rating for %q: %w",
					item, err)
			}
			e.Name = strings.TrimSpace(name)
			e.Rating = r
		}
		entrants = append(entrants, e)
	}
	if len(entrants) == 0 {
		return nil, fmt.Errorf("field.parse: no entrants in %q", s)
	}

	return entrants, nil
}

// FromEvent returns the entrants registered for eventID in section. An
// empty section is only accepted when the event has a single section.
func FromEvent(ctx context.Context, client *bcc.Client, eventID int64,
	section string) ([]Entrant, error) {

	entries, err := client.GetEntries(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("field.event: %w", err)
	}

	sections := bcc.Sections(entries)
	if section == "" && len(sections) > 1 {
		return nil, fmt.Errorf("field.event: event %v has sections %v; please choose one",
			eventID, strings.Join(sections, ", "))
	}

	entrants := FromEntries(entries, section)
	if len(entrants) == 0 {
		return nil, fmt.Errorf("field.event: no entrants in section %q of event %v (sections: %v)",
			section, eventID, strings.Join(sections, ", "))
	}

	return entrants, nil
}
