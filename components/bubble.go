package components

import "github.com/yohamta/donburi"

type BubbleState int

const (
	BubbleShooting BubbleState = iota
	BubbleFloating
	BubbleHolding
)

type BubbleData struct {
	State         BubbleState
	LifeTime      float64
	ShootDuration float64
	MaxLife       float64
	Captive       *donburi.Entry
}

var Bubble = donburi.NewComponentType[BubbleData]()
