package m3u

import (
	"context"
	"net/http"
	"sync"
	"time"

	"m3u-parser/utils"
	"m3u-parser/utils/safemap"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/ratelimit"
)

const probeCacheTTL = 5 * time.Minute

// probeResults is shared process-wide so repeated sessions over the same
// playlist do not re-probe references already known good.
var probeResults = gocache.New(probeCacheTTL, 2*probeCacheTTL)

// prober issues at most one liveness probe per media reference. Duplicate
// references within a session share the first probe's outcome through the
// in-flight map; across sessions only GOOD outcomes are served from the
// TTL cache, so a previously failing reference gets probed again.
type prober struct {
	client    *http.Client
	userAgent string
	limiter   ratelimit.Limiter
	inflight  *safemap.Map[string, *probeResult]
}

type probeResult struct {
	once   sync.Once
	status Status
}

func newProber(client *http.Client, userAgent string, probesPerSecond int) *prober {
	limiter := ratelimit.NewUnlimited()
	if probesPerSecond > 0 {
		limiter = ratelimit.New(probesPerSecond)
	}

	return &prober{
		client:    client,
		userAgent: userAgent,
		limiter:   limiter,
		inflight:  safemap.New[string, *probeResult](),
	}
}

// Check returns GOOD when url answered a success-class status within the
// client timeout, BAD on any transport error, timeout or other status.
func (p *prober) Check(ctx context.Context, url string) Status {
	if cached, ok := probeResults.Get(url); ok {
		return cached.(Status)
	}

	res, _ := p.inflight.GetOrCompute(url, func() *probeResult {
		return &probeResult{}
	})
	res.once.Do(func() {
		res.status = p.probe(ctx, url)
		if res.status == StatusGood {
			probeResults.SetDefault(url, res.status)
		}
	})
	return res.status
}

func (p *prober) probe(ctx context.Context, url string) Status {
	p.limiter.Take()

	resp, err := utils.CustomHttpRequest(ctx, p.client, http.MethodGet, url, p.userAgent)
	if err != nil {
		return StatusBad
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return StatusGood
	}
	return StatusBad
}
