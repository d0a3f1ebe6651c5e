package audio

// SoundID identifies a one-shot sound effect
type SoundID uint8

const (
	SoundLaser SoundID = iota
	SoundEnemyShot
	SoundExplosion
	SoundPlayerHit
	SoundAlert
	SoundAsteroidBreak
	SoundUFOShot
	SoundMissileWarning
	SoundMenuMove
	SoundMenuSelect
	SoundWarp
	SoundHeal
	SoundVictory
	SoundOrbit
	soundCount
)

var soundNames = [soundCount]string{
	"laser", "enemy_shot", "explosion", "player_hit", "alert", "asteroid_break",
	"ufo_shot", "missile_warning", "menu_move", "menu_select", "warp", "heal", "victory", "orbit",
}

func (s SoundID) String() string {
	if s < soundCount {
		return soundNames[s]
	}
	return "unknown"
}

// MusicID identifies a looping music track, MusicNone is silence
type MusicID uint8

const (
	MusicNone MusicID = iota
	MusicMenu
	MusicStarMap
	MusicCombat
	MusicStorm
	MusicMission
	MusicVictory
	MusicGameOver
	musicCount
)

var musicNames = [musicCount]string{
	"none", "menu", "star_map", "combat", "storm", "mission", "victory", "game_over",
}

func (m MusicID) String() string {
	if m < musicCount {
		return musicNames[m]
	}
	return "unknown"
}
