package probe

import (
	"bufio"
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tgrabiec/virt-stat/internal/model"
)

// NetDevProbe reads per-interface RX/TX byte counters from
// /proc/net/dev.
type NetDevProbe struct {
	path string
}

// NewNetDevProbe creates a probe over the given net/dev file.
func NewNetDevProbe(path string) *NetDevProbe { return &NetDevProbe{path: path} }

func (p *NetDevProbe) ID() string          { return "netdev" }
func (p *NetDevProbe) Description() string { return "Per-interface bytes received and sent" }

func (p *NetDevProbe) Probe(ctx context.Context) ([]model.Sample, error) {
	f, err := os.Open(p.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	now := time.Now()
	var samples []model.Sample

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		// Interface lines look like:
		//   eth0: rx_bytes rx_packets ... tx_bytes tx_packets ...
		// The two header lines have no colon-delimited counters.
		name, rest, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) < 9 {
			continue
		}
		src := model.NewSource("net", strings.TrimSpace(name))
		rx, err1 := strconv.ParseInt(fields[0], 10, 64)
		tx, err2 := strconv.ParseInt(fields[8], 10, 64)
		if err1 != nil || err2 != nil {
			continue
		}
		samples = append(samples,
			model.Sample{Subject: model.Subject{Source: src, Measurable: NetRxBytes}, Time: now, Value: rx},
			model.Sample{Subject: model.Subject{Source: src, Measurable: NetTxBytes}, Time: now, Value: tx},
		)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return samples, nil
}
