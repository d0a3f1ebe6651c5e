package render

// Palette shared by the mode renderers
var (
	RgbBackground  = RGB{R: 8, G: 10, B: 20}
	RgbStarDim     = RGB{R: 70, G: 70, B: 90}
	RgbStarBright  = RGB{R: 200, G: 200, B: 230}
	RgbText        = RGB{R: 220, G: 220, B: 220}
	RgbTextDim     = RGB{R: 120, G: 120, B: 140}
	RgbTitle       = RGB{R: 255, G: 200, B: 60}
	RgbSelected    = RGB{R: 80, G: 220, B: 255}
	RgbWarning     = RGB{R: 255, G: 60, B: 60}
	RgbSuccess     = RGB{R: 80, G: 255, B: 120}
	RgbBannerStrip = RGB{R: 30, G: 30, B: 50}

	RgbPlayer      = RGB{R: 90, G: 200, B: 255}
	RgbPlayerHurt  = RGB{R: 255, G: 120, B: 120}
	RgbLaser       = RGB{R: 255, G: 80, B: 80}
	RgbPlayerShot  = RGB{R: 255, G: 255, B: 120}
	RgbEnemyShot   = RGB{R: 255, G: 140, B: 40}
	RgbEnemyBasic  = RGB{R: 200, G: 60, B: 60}
	RgbEnemyFast   = RGB{R: 240, G: 220, B: 60}
	RgbEnemyElite  = RGB{R: 190, G: 80, B: 255}
	RgbHitFlash    = RGB{R: 255, G: 255, B: 255}
	RgbExplosion   = RGB{R: 255, G: 170, B: 40}
	RgbCrosshair   = RGB{R: 120, G: 255, B: 120}
	RgbCrack       = RGB{R: 200, G: 220, B: 255}
	RgbAsteroid    = RGB{R: 150, G: 130, B: 110}
	RgbUFO         = RGB{R: 120, G: 255, B: 160}
	RgbUFOShot     = RGB{R: 255, G: 90, B: 200}
	RgbWall        = RGB{R: 110, G: 70, B: 40}
	RgbWallEdge    = RGB{R: 190, G: 120, B: 60}
	RgbObstacle    = RGB{R: 255, G: 90, B: 90}
	RgbBarrier     = RGB{R: 255, G: 150, B: 0}
	RgbMissile     = RGB{R: 255, G: 50, B: 120}
	RgbExit        = RGB{R: 60, G: 255, B: 200}
	RgbHealthFull  = RGB{R: 60, G: 220, B: 80}
	RgbHealthEmpty = RGB{R: 60, G: 40, B: 40}

	RgbSectorHidden      = RGB{R: 60, G: 60, B: 70}
	RgbSectorEnemy       = RGB{R: 220, G: 70, B: 70}
	RgbSectorAsteroid    = RGB{R: 170, G: 150, B: 120}
	RgbSectorEnemyPlanet = RGB{R: 255, G: 60, B: 160}
	RgbSectorAllyPlanet  = RGB{R: 80, G: 200, B: 255}
	RgbSectorCompleted   = RGB{R: 90, G: 90, B: 90}
)

// Hue returns a saturated color for h in [0,1), used by fireworks
func Hue(h float64) RGB {
	h -= float64(int(h))
	if h < 0 {
		h++
	}
	x := h * 6
	i := int(x)
	f := x - float64(i)
	up, down := uint8(255*f), uint8(255*(1-f))
	switch i {
	case 0:
		return RGB{R: 255, G: up, B: 0}
	case 1:
		return RGB{R: down, G: 255, B: 0}
	case 2:
		return RGB{R: 0, G: 255, B: up}
	case 3:
		return RGB{R: 0, G: down, B: 255}
	case 4:
		return RGB{R: up, G: 0, B: 255}
	default:
		return RGB{R: 255, G: 0, B: down}
	}
}
