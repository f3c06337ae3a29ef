package board

import "math"

// Sprite sheet indices.
const (
	SpriteRoadDeadEnd = 16 + iota
	SpriteRoadStraight
	SpriteRoadCorner
	SpriteRoadTee
	SpriteRoadCross
	SpriteGhost
	SpriteHouse
)

// Road pieces are drawn from one base sprite turned by a clockwise angle.
// Base orientations: dead end opens south, straight runs north-south, corner
// joins south and east, tee joins north, east and south.
type roadSprite struct {
	index int
	angle float32
}

const pi = float32(math.Pi)

var roadSprites = [16]roadSprite{
	{-1, 0},                      // ____
	{SpriteRoadDeadEnd, pi},      // ___N
	{SpriteRoadDeadEnd, -pi / 2}, // __E_
	{SpriteRoadCorner, -pi / 2},  // __EN
	{SpriteRoadDeadEnd, 0},       // _S__
	{SpriteRoadStraight, 0},      // _S_N
	{SpriteRoadCorner, 0},        // _SE_
	{SpriteRoadTee, 0},           // _SEN
	{SpriteRoadDeadEnd, pi / 2},  // W___
	{SpriteRoadCorner, pi},       // W__N
	{SpriteRoadStraight, pi / 2}, // W_E_
	{SpriteRoadTee, -pi / 2},     // W_EN
	{SpriteRoadCorner, pi / 2},   // WS__
	{SpriteRoadTee, pi},          // WS_N
	{SpriteRoadTee, pi / 2},      // WSE_
	{SpriteRoadCross, 0},         // WSEN
}

// RoadSprite maps a road tile's orthogonal flags to a sprite index and a
// clockwise rotation in radians. An isolated road has no sprite.
func RoadSprite(flags Direction) (index int, angle float32, ok bool) {
	s := roadSprites[flags&OrthoMask]
	if s.index < 0 {
		return 0, 0, false
	}
	return s.index, s.angle, true
}
