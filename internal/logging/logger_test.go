package logging

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLogging(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		_ = Initialize(Options{})
	})
}

// TestAllCategoriesLog tests that all categories create log files when debug_mode is true
func TestAllCategoriesLog(t *testing.T) {
	resetLogging(t)
	dir := t.TempDir()

	require.NoError(t, Initialize(Options{DebugMode: true, Level: "debug", Dir: dir}))
	assert.True(t, IsCategoryEnabled(CategoryBoot))

	categories := []Category{
		CategoryBoot, CategoryAnimation, CategoryUI, CategoryConfig, CategoryExercises,
	}
	for _, cat := range categories {
		Get(cat).Info("hello from %s", cat)
	}
	CloseAll()

	date := time.Now().Format("2006-01-02")
	for _, cat := range categories {
		path := filepath.Join(dir, date+"_"+string(cat)+".log")
		data, err := os.ReadFile(path)
		require.NoError(t, err, "missing log file for %s", cat)
		assert.Contains(t, string(data), "hello from "+string(cat))
	}
}

func TestProductionModeIsSilent(t *testing.T) {
	resetLogging(t)
	dir := t.TempDir()

	require.NoError(t, Initialize(Options{DebugMode: false, Dir: dir}))
	assert.False(t, IsCategoryEnabled(CategoryBoot))

	Get(CategoryAnimation).Info("should not be written")
	Animation("nor this")
	CloseAll()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDebugModeRequiresDir(t *testing.T) {
	resetLogging(t)
	err := Initialize(Options{DebugMode: true})
	assert.Error(t, err)
}

func TestCategoryFilter(t *testing.T) {
	resetLogging(t)
	dir := t.TempDir()

	require.NoError(t, Initialize(Options{
		DebugMode:  true,
		Dir:        dir,
		Categories: map[string]bool{"ui": false},
	}))

	assert.False(t, IsCategoryEnabled(CategoryUI))
	assert.True(t, IsCategoryEnabled(CategoryAnimation), "unlisted categories default to enabled")

	UI("filtered out")
	Animation("kept")
	CloseAll()

	date := time.Now().Format("2006-01-02")
	_, err := os.Stat(filepath.Join(dir, date+"_ui.log"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, date+"_animation.log"))
	assert.NoError(t, err)
}

func TestLevelFiltering(t *testing.T) {
	resetLogging(t)
	dir := t.TempDir()

	require.NoError(t, Initialize(Options{DebugMode: true, Level: "warn", Dir: dir}))

	log := Get(CategoryConfig)
	log.Debug("debug line")
	log.Info("info line")
	log.Warn("warn line")
	log.Error("error line")
	CloseAll()

	date := time.Now().Format("2006-01-02")
	data, err := os.ReadFile(filepath.Join(dir, date+"_config.log"))
	require.NoError(t, err)
	content := string(data)

	assert.NotContains(t, content, "debug line")
	assert.NotContains(t, content, "info line")
	assert.Contains(t, content, "warn line")
	assert.Contains(t, content, "error line")
}

func TestJSONFormat(t *testing.T) {
	resetLogging(t)
	dir := t.TempDir()

	require.NoError(t, Initialize(Options{DebugMode: true, JSONFormat: true, Dir: dir}))
	Get(CategoryAnimation).With("label", "$49").Info("frame")
	CloseAll()

	date := time.Now().Format("2006-01-02")
	data, err := os.ReadFile(filepath.Join(dir, date+"_animation.log"))
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))
	assert.True(t, strings.HasPrefix(line, "{"), "expected JSON line, got %q", line)
	assert.Contains(t, line, `"label":"$49"`)
	assert.Contains(t, line, `"cat":"animation"`)
}

func TestConcurrentGet(t *testing.T) {
	resetLogging(t)
	require.NoError(t, Initialize(Options{DebugMode: true, Dir: t.TempDir()}))

	var wg sync.WaitGroup
	got := make([]*Logger, 16)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = Get(CategoryAnimation)
		}(i)
	}
	wg.Wait()

	for _, l := range got {
		assert.Same(t, got[0], l)
	}
}

func TestTimerStopWithThreshold(t *testing.T) {
	resetLogging(t)
	timer := StartTimer(CategoryAnimation, "op")
	time.Sleep(5 * time.Millisecond)
	elapsed := timer.StopWithThreshold(time.Millisecond)
	assert.GreaterOrEqual(t, elapsed, 5*time.Millisecond)
}
