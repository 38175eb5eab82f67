package main

import (
	"strconv"

	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

const progressKey = "furthest_level"

// Progress remembers the furthest level reached between runs. Without a
// usable data directory it silently does nothing.
type Progress struct {
	manager *gdata.Manager
	logger  *zap.Logger
}

func openProgress(logger *zap.Logger) *Progress {
	m, err := gdata.Open(gdata.Config{AppName: "bubblebound"})
	if err != nil {
		logger.Warn("progress storage unavailable", zap.Error(err))
		return &Progress{logger: logger}
	}
	return &Progress{manager: m, logger: logger}
}

// Furthest returns the stored level index, 0 when nothing is stored.
func (p *Progress) Furthest() int {
	if p.manager == nil {
		return 0
	}
	data, err := p.manager.LoadItem(progressKey)
	if err != nil || data == nil {
		return 0
	}
	idx, err := strconv.Atoi(string(data))
	if err != nil {
		p.logger.Warn("bad stored progress", zap.ByteString("value", data))
		return 0
	}
	return idx
}

// Reached records index if it is further than what is stored.
func (p *Progress) Reached(index int) {
	if p.manager == nil || index <= p.Furthest() {
		return
	}
	if err := p.manager.SaveItem(progressKey, []byte(strconv.Itoa(index))); err != nil {
		p.logger.Warn("save progress", zap.Error(err))
	}
}
