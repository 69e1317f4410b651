package app

import (
	"encoding/json"
	"time"
)

// PlayerResponse represents the response from /v2/player.
// The API sends the player key with an explicit null for unknown players.
type PlayerResponse struct {
	Success bool        `json:"success"`
	Player  *PlayerData `json:"player"`
}

// PlayerData is the nested player payload from /v2/player
type PlayerData struct {
	Displayname string          `json:"displayname"`
	FirstLogin  *int64          `json:"firstLogin"`
	LastLogin   *int64          `json:"lastLogin"`
	SocialMedia SocialMediaData `json:"socialMedia"`
}

// SocialMediaData wraps the player's linked social media accounts
type SocialMediaData struct {
	Links map[string]string `json:"links"`
}

// ProfilesResponse represents the response from /v2/skyblock/profiles.
//
// The upstream API distinguishes between omitting the profiles key and
// sending it as an explicit null, and downstream error reporting depends
// on which form arrived. Decoding goes through UnmarshalJSON to keep
// both facts instead of collapsing them into a nil slice.
type ProfilesResponse struct {
	Success      bool
	Profiles     []SkyBlockProfile
	ProfilesKey  bool // the "profiles" key appeared in the payload
	ProfilesNull bool // the "profiles" key held an explicit null
}

func (r *ProfilesResponse) UnmarshalJSON(data []byte) error {
	var raw struct {
		Success  bool            `json:"success"`
		Profiles json.RawMessage `json:"profiles"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Success = raw.Success
	r.Profiles = nil
	r.ProfilesKey = raw.Profiles != nil
	r.ProfilesNull = string(raw.Profiles) == "null"
	if !r.ProfilesKey || r.ProfilesNull {
		return nil
	}
	return json.Unmarshal(raw.Profiles, &r.Profiles)
}

// SkyBlockProfile is one raw profile record from the profiles listing
type SkyBlockProfile struct {
	ProfileID string                   `json:"profile_id"`
	CuteName  string                   `json:"cute_name"`
	Members   map[string]ProfileMember `json:"members"`
}

// ProfileMember is the per-profile slice of a player's raw game state.
// The members map keys are de-hyphenated UUIDs.
type ProfileMember struct {
	// LastSave is epoch milliseconds. It stays nil for players who were
	// invited to the profile but never played on it.
	LastSave *int64 `json:"last_save"`

	// Skill experience fields are all absent when the player has the
	// skills API disabled.
	ExperienceSkillTaming     *float64 `json:"experience_skill_taming"`
	ExperienceSkillFarming    *float64 `json:"experience_skill_farming"`
	ExperienceSkillMining     *float64 `json:"experience_skill_mining"`
	ExperienceSkillCombat     *float64 `json:"experience_skill_combat"`
	ExperienceSkillForaging   *float64 `json:"experience_skill_foraging"`
	ExperienceSkillFishing    *float64 `json:"experience_skill_fishing"`
	ExperienceSkillEnchanting *float64 `json:"experience_skill_enchanting"`
	ExperienceSkillAlchemy    *float64 `json:"experience_skill_alchemy"`

	SlayerBosses map[string]SlayerBoss `json:"slayer_bosses"`
	Dungeons     DungeonsData          `json:"dungeons"`
}

// SlayerBoss holds the raw per-boss slayer progress
type SlayerBoss struct {
	XP float64 `json:"xp"`
}

// DungeonsData holds the raw dungeons section of a member record
type DungeonsData struct {
	DungeonTypes  map[string]DungeonProgress `json:"dungeon_types"`
	PlayerClasses map[string]DungeonProgress `json:"player_classes"`
}

// DungeonProgress is the raw experience for one dungeon type or class
type DungeonProgress struct {
	Experience float64 `json:"experience"`
}

// PlayerStats is the normalized identity record extracted from a
// player-lookup response. Immutable once constructed.
type PlayerStats struct {
	Username    string            `json:"username"`
	FirstLogin  *int64            `json:"firstLogin"`
	LastLogin   *int64            `json:"lastLogin"`
	SocialMedia map[string]string `json:"socialMedia"`
}

// LastSave carries a profile's last-save moment both as the raw epoch
// millisecond value and as a constructed time
type LastSave struct {
	Time int64     `json:"time"`
	Date time.Time `json:"date"`
}

// WeightTotals is embedded by every category sub-score object so the
// aggregator can sum categories without knowing their shapes
type WeightTotals struct {
	Weight         float64 `json:"weight"`
	WeightOverflow float64 `json:"weight_overflow"`
}

// SkillWeight is the derived score for a single skill
type SkillWeight struct {
	Level      float64 `json:"level"`
	Experience float64 `json:"experience"`
	WeightTotals
}

// SkillsWeight is the skills category sub-score
type SkillsWeight struct {
	AverageSkillLevel float64                `json:"average_skill_level"`
	Skills            map[string]SkillWeight `json:"skills"`
	WeightTotals
}

// SlayerBossWeight is the derived score for a single slayer boss
type SlayerBossWeight struct {
	Experience float64 `json:"experience"`
	WeightTotals
}

// SlayersWeight is the slayers category sub-score
type SlayersWeight struct {
	TotalExperience float64                     `json:"total_experience"`
	Bosses          map[string]SlayerBossWeight `json:"bosses"`
	WeightTotals
}

// DungeonWeight is the derived score for one dungeon type or class
type DungeonWeight struct {
	Level      float64 `json:"level"`
	Experience float64 `json:"experience"`
	WeightTotals
}

// DungeonsWeight is the dungeons category sub-score
type DungeonsWeight struct {
	Types   map[string]DungeonWeight `json:"types"`
	Classes map[string]DungeonWeight `json:"classes"`
	WeightTotals
}

// SkyBlockProfileStats is a normalized profile record. One is only ever
// constructed for a profile the target player has actually played on.
type SkyBlockProfileStats struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	LastSaveAt     LastSave        `json:"last_save_at"`
	Weight         float64         `json:"weight"`
	WeightOverflow float64         `json:"weight_overflow"`
	Skills         *SkillsWeight   `json:"skills,omitempty"`
	Slayers        *SlayersWeight  `json:"slayers,omitempty"`
	Dungeons       *DungeonsWeight `json:"dungeons,omitempty"`
}

// SkyBlockProfilePlayerStats is the merged API-facing record combining
// one profile's stats with the player's identity. It carries exactly
// this field set; login timestamps and social media links are dropped
// during the merge.
type SkyBlockProfilePlayerStats struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Username       string          `json:"username"`
	LastSaveAt     LastSave        `json:"last_save_at"`
	Weight         float64         `json:"weight"`
	WeightOverflow float64         `json:"weight_overflow"`
	Skills         *SkillsWeight   `json:"skills,omitempty"`
	Slayers        *SlayersWeight  `json:"slayers,omitempty"`
	Dungeons       *DungeonsWeight `json:"dungeons,omitempty"`
}
