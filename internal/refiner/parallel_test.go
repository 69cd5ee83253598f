package refiner

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Hari-Shankar-Karthik/masklasso/internal/config"
	"github.com/Hari-Shankar-Karthik/masklasso/internal/mask"
)

func writeJobPair(t *testing.T, dir, name string) (string, string) {
	t.Helper()
	imgPath := filepath.Join(dir, name+"_img.png")
	maskPath := filepath.Join(dir, name+"_mask.png")

	f, err := os.Create(imgPath)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, squareImage(40, 10, 29)))
	require.NoError(t, f.Close())

	require.NoError(t, squareMask(40, 10, 29).Save(maskPath))
	return imgPath, maskPath
}

func TestRefineAllProcessesJobsInOrder(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Refine.SearchRadius = 3

	var jobs []Job
	for _, name := range []string{"a", "b", "c"} {
		imgPath, maskPath := writeJobPair(t, dir, name)
		jobs = append(jobs, Job{
			ImagePath:  imgPath,
			MaskPath:   maskPath,
			OutputPath: filepath.Join(dir, name+"_out.png"),
		})
	}

	results := RefineAll(context.Background(), jobs, cfg)
	require.Len(t, results, 3)
	for i, res := range results {
		require.Equal(t, jobs[i], res.Job)
		require.NoError(t, res.Err)
		require.NotNil(t, res.Report)

		saved, err := mask.Load(jobs[i].OutputPath)
		require.NoError(t, err)
		require.False(t, saved.Empty())
	}
}

func TestRefineAllRecordsPerJobFailures(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()

	imgPath, maskPath := writeJobPair(t, dir, "good")
	jobs := []Job{
		{ImagePath: imgPath, MaskPath: maskPath},
		{ImagePath: filepath.Join(dir, "missing.png"), MaskPath: maskPath},
	}

	results := RefineAll(context.Background(), jobs, cfg)
	require.Len(t, results, 2)
	require.NoError(t, results[0].Err)
	require.Error(t, results[1].Err)
	require.Nil(t, results[1].Report)
}

func TestRefineAllEmptyJobList(t *testing.T) {
	results := RefineAll(context.Background(), nil, config.DefaultConfig())
	require.Empty(t, results)
}

func TestRefineAllHonorsCancelledContext(t *testing.T) {
	dir := t.TempDir()
	imgPath, maskPath := writeJobPair(t, dir, "x")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := RefineAll(ctx, []Job{{ImagePath: imgPath, MaskPath: maskPath}}, config.DefaultConfig())
	require.Len(t, results, 1)
	require.Error(t, results[0].Err)
}
