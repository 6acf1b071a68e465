package peers

import (
	"reflect"
	"testing"
)

func TestKmeansDeterministic(t *testing.T) {
	features := [][]float64{
		{1, 90, 5, 40}, {2, 85, 6, 35}, {1, 92, 4, 38},
		{10, 40, 20, 90}, {12, 35, 22, 95},
		{0, 10, 1, 2}, {1, 15, 0, 3},
	}
	first := kmeans(features)
	for i := 0; i < 5; i++ {
		if got := kmeans(features); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %v vs %v", i, got, first)
		}
	}
}

func TestKmeansKeepsDuplicatesTogether(t *testing.T) {
	features := [][]float64{
		{1, 90, 5, 40}, {1, 90, 5, 40},
		{50, 10, 90, 300}, {50, 10, 90, 300},
		{10, 50, 20, 100}, {10, 50, 20, 100},
	}
	assign := kmeans(features)
	for i := 0; i < len(features); i += 2 {
		if assign[i] != assign[i+1] {
			t.Errorf("duplicate rows %d,%d split: %v", i, i+1, assign)
		}
	}
	for i, c := range assign {
		if c < 0 || c >= numClusters {
			t.Errorf("row %d assigned out-of-range cluster %d", i, c)
		}
	}
}

func TestKmeansFewerRowsThanClusters(t *testing.T) {
	assign := kmeans([][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}})
	if len(assign) != 2 {
		t.Fatalf("assignments = %v", assign)
	}
	if assign := kmeans(nil); assign != nil {
		t.Errorf("empty input gave %v", assign)
	}
}

func TestStrengthLabels(t *testing.T) {
	m := LearnerMetrics{AvgScorePct: 80, VideosCount: 6, ActivityN: 25}
	got := strengths(m)
	if len(got) != 3 {
		t.Errorf("labels = %v", got)
	}
	if got := strengths(LearnerMetrics{}); len(got) != 1 || got[0] != "getting started" {
		t.Errorf("default label = %v", got)
	}
}
