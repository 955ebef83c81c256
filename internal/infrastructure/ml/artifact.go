package ml

import (
	"encoding/json"
	"fmt"
	"os"
)

// node is one node of a regression tree. Leaves have left == right == -1 and
// carry the leaf output in Value; internal nodes carry the subtree's
// expected value in Value, which the attribution walk differences.
type node struct {
	Feature     int      `json:"feature"`
	Threshold   float64  `json:"threshold"`
	Categories  []string `json:"categories,omitempty"`
	DefaultLeft bool     `json:"default_left"`
	Left        int      `json:"left"`
	Right       int      `json:"right"`
	Value       float64  `json:"value"`
}

func (n node) isLeaf() bool { return n.Left < 0 && n.Right < 0 }

// tree is one member of the boosted ensemble, nodes indexed from the root at 0.
type tree struct {
	Nodes []node `json:"nodes"`
}

// artifact is the serialized regression model: a boosted-tree ensemble
// exported at training time. The raw prediction is bias plus the sum of each
// tree's selected leaf value, in the model's native (e.g. log-income) scale.
type artifact struct {
	ModelVersion string  `json:"model_version"`
	Bias         float64 `json:"bias"`
	Trees        []tree  `json:"trees"`
}

// loadArtifact reads and validates the model file.
func loadArtifact(path string, featureCount int) (*artifact, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	var a artifact
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}

	if len(a.Trees) == 0 {
		return nil, fmt.Errorf("model artifact %s declares no trees", path)
	}

	for ti, t := range a.Trees {
		if len(t.Nodes) == 0 {
			return nil, fmt.Errorf("tree %d has no nodes", ti)
		}
		for ni, n := range t.Nodes {
			if n.isLeaf() {
				continue
			}
			if n.Feature < 0 || n.Feature >= featureCount {
				return nil, fmt.Errorf("tree %d node %d references feature %d outside manifest range [0,%d)",
					ti, ni, n.Feature, featureCount)
			}
			if n.Left < 0 || n.Left >= len(t.Nodes) || n.Right < 0 || n.Right >= len(t.Nodes) {
				return nil, fmt.Errorf("tree %d node %d has out-of-range children", ti, ni)
			}
			if n.Left <= ni || n.Right <= ni {
				return nil, fmt.Errorf("tree %d node %d children must follow their parent", ti, ni)
			}
		}
	}

	return &a, nil
}
