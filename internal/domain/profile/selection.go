package profile

import (
	"strings"
	"time"

	"skyblock_stats/internal/app"
	"skyblock_stats/internal/apperr"
)

// Generators holds the three category sub-score constructors invoked
// during normalization. Each receives the raw member record and returns
// nil when its category does not apply to that member.
type Generators struct {
	Skills   func(*app.ProfileMember) *app.SkillsWeight
	Slayers  func(*app.ProfileMember) *app.SlayersWeight
	Dungeons func(*app.ProfileMember) *app.DungeonsWeight
}

// StripDashes normalizes a hyphenated UUID to the de-hyphenated form
// used as member map keys by the profiles API
func StripDashes(uuid string) string {
	return strings.ReplaceAll(uuid, "-", "")
}

// IsProfileMember reports whether the player identified by memberUUID
// has actually played on the profile: the member record must exist and
// carry a defined last_save. A player who was invited to a profile but
// never joined still appears in the members map, without a last_save.
//
// Pure function: No I/O, simple boolean logic
func IsProfileMember(p *app.SkyBlockProfile, memberUUID string) bool {
	member, ok := p.Members[memberUUID]
	return ok && member.LastSave != nil
}

// SelectProfiles filters a raw profiles response down to the profiles
// the target player has played on and normalizes each into a
// SkyBlockProfileStats. Output order matches input order.
//
// An explicitly-null profiles key fails immediately. An absent profiles
// key does not trip that check; it falls through to the empty-result
// check below, so the caller still sees the same 404 but the error
// reason records which condition occurred.
func SelectProfiles(resp *app.ProfilesResponse, uuid string, gens Generators) ([]app.SkyBlockProfileStats, error) {
	if resp != nil && resp.ProfilesNull {
		return nil, noProfilesError(apperr.ReasonProfilesNull, uuid)
	}

	memberUUID := StripDashes(uuid)

	var stats []app.SkyBlockProfileStats
	if resp != nil {
		for i := range resp.Profiles {
			p := &resp.Profiles[i]
			if !IsProfileMember(p, memberUUID) {
				continue
			}
			member := p.Members[memberUUID]
			stats = append(stats, BuildProfileStats(p, &member, gens))
		}
	}

	if len(stats) == 0 {
		reason := apperr.ReasonAllFiltered
		if resp == nil || !resp.ProfilesKey {
			reason = apperr.ReasonProfilesMissing
		}
		return nil, noProfilesError(reason, uuid)
	}

	return stats, nil
}

func noProfilesError(reason apperr.Reason, uuid string) error {
	return apperr.NotFound(reason,
		"Found no SkyBlock profiles for a user with a UUID of '%s'", uuid)
}

// BuildProfileStats normalizes one raw profile for one member. The
// caller guarantees member.LastSave is defined. Weight totals are
// computed before the record is returned, so no caller ever observes a
// partially-aggregated value.
//
// Pure function: No I/O apart from the injected generators
func BuildProfileStats(p *app.SkyBlockProfile, member *app.ProfileMember, gens Generators) app.SkyBlockProfileStats {
	stats := app.SkyBlockProfileStats{
		ID:   p.ProfileID,
		Name: p.CuteName,
		LastSaveAt: app.LastSave{
			Time: *member.LastSave,
			Date: time.UnixMilli(*member.LastSave).UTC(),
		},
	}

	if gens.Skills != nil {
		stats.Skills = gens.Skills(member)
	}
	if gens.Slayers != nil {
		stats.Slayers = gens.Slayers(member)
	}
	if gens.Dungeons != nil {
		stats.Dungeons = gens.Dungeons(member)
	}

	stats.Weight = SumWeight(&stats)
	stats.WeightOverflow = SumWeightOverflow(&stats)

	return stats
}
