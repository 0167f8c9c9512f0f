package m3u

import (
	"errors"
	"math/rand"
)

var ErrNoStreams = errors.New("no streams information available")

// RandomStream picks one stream uniformly from the live sequence,
// optionally shuffling the whole sequence first. Returns ErrNoStreams on
// an empty sequence.
func (p *Parser) RandomStream(shuffle bool) (StreamInfo, error) {
	if len(p.streams) == 0 {
		return StreamInfo{}, ErrNoStreams
	}

	if shuffle {
		rand.Shuffle(len(p.streams), func(i, j int) {
			p.streams[i], p.streams[j] = p.streams[j], p.streams[i]
		})
	}

	return p.streams[rand.Intn(len(p.streams))], nil
}
