package batch

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/antoinelb/waveflume/internal/boundary"
	"github.com/antoinelb/waveflume/internal/config"
	"github.com/antoinelb/waveflume/internal/dispersion"
	"github.com/antoinelb/waveflume/internal/kinematics"
)

// Trace is the JSON-serializable record of one resolved scenario
// stepped across its configured simulation window.
type Trace struct {
	Height float64 `json:"height"`
	Period float64 `json:"period"`
	Depth  float64 `json:"depth"`

	WaveNumber  float64 `json:"wave_number"`
	AngularFreq float64 `json:"angular_frequency"`
	PhaseSpeed  float64 `json:"phase_speed"`
	Wavelength  float64 `json:"wavelength"`
	Regime      string  `json:"regime"`

	Times             []float64 `json:"times"`
	BoundaryVelocity  []float64 `json:"boundary_velocity"`
	BoundaryElevation []float64 `json:"boundary_elevation"`

	// GridPositions, InitialVelocityField, and InitialElevationField
	// sample the host grid's initial spatial field across
	// cfg.Simulation.GridCells points spanning one wavelength from the
	// generation position — independent of the boundary driver, which
	// only ever writes index 0 of a caller's grid.
	GridPositions         []float64 `json:"grid_positions"`
	InitialVelocityField  []float64 `json:"initial_velocity_field"`
	InitialElevationField []float64 `json:"initial_elevation_field"`
}

// RunScenario resolves the wave described by cfg, steps a
// boundary.Driver across the configured simulation duration at the
// configured (or recommended) time step, and returns the resulting
// Trace. It does not write any file; callers decide where the result
// goes.
func RunScenario(cfg config.Config) (Trace, error) {
	solver := dispersion.NewSolver()
	p, err := solver.Solve(cfg.Wave.Height, cfg.Wave.Period, cfg.Wave.Depth)
	if err != nil {
		return Trace{}, fmt.Errorf("batch: dispersion solve failed: %w", err)
	}

	driver := boundary.NewDriver(p)
	driver.SetGenerationPosition(cfg.Boundary.GenerationPosition)

	gridPositions := kinematics.SampleGrid(
		cfg.Boundary.GenerationPosition,
		cfg.Boundary.GenerationPosition+p.L,
		cfg.Simulation.GridCells,
	)
	fieldKinematics := kinematics.New(p)
	initialVelocityField := fieldKinematics.SpatialSeries(gridPositions, 0)
	initialElevationField := fieldKinematics.ElevationSpatialSeries(gridPositions, 0)

	dt := cfg.Simulation.TimeStep
	if dt <= 0 {
		dt = driver.RecommendedTimeStep()
	}

	nSteps := int(math.Ceil(cfg.Simulation.Duration/dt)) + 1
	times := make([]float64, 0, nSteps)
	velocities := make([]float64, 0, nSteps)
	elevations := make([]float64, 0, nSteps)

	for driver.CurrentTime <= cfg.Simulation.Duration {
		var u, eta float64
		if cfg.Boundary.RampDuration > 0 {
			uGrid := []float64{0}
			etaGrid := []float64{0}
			driver.ApplyRampedBoundaryConditions(uGrid, etaGrid, cfg.Boundary.RampDuration)
			u, eta = uGrid[0], etaGrid[0]
		} else {
			u, eta = driver.BoundaryVelocity(), driver.BoundarySurfaceElevation()
		}

		times = append(times, driver.CurrentTime)
		velocities = append(velocities, u)
		elevations = append(elevations, eta)

		driver.AdvanceTime(dt)
	}

	return Trace{
		Height:                p.H,
		Period:                p.T,
		Depth:                 p.D,
		WaveNumber:            p.K,
		AngularFreq:           p.Omega,
		PhaseSpeed:            p.C,
		Wavelength:            p.L,
		Regime:                p.Regime().String(),
		Times:                 times,
		BoundaryVelocity:      velocities,
		BoundaryElevation:     elevations,
		GridPositions:         gridPositions,
		InitialVelocityField:  initialVelocityField,
		InitialElevationField: initialElevationField,
	}, nil
}

// WriteTraceFile marshals trace as indented JSON and writes it to
// fileName, creating parent directories as needed.
func WriteTraceFile(trace Trace, fileName string) error {
	data, err := json.MarshalIndent(trace, "", "\t")
	if err != nil {
		return fmt.Errorf("batch: failed to marshal trace: %w", err)
	}

	dir := filepath.Dir(fileName)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("batch: failed to create output directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(fileName, data, 0644); err != nil {
		return fmt.Errorf("batch: failed to write %s: %w", fileName, err)
	}
	return nil
}

// job represents a single YAML scenario file to process.
type job struct {
	path string
}

// worker processes scenario files from jobs concurrently.
func worker(id int, jobs <-chan job, wg *sync.WaitGroup, processedCount *atomic.Int64) {
	defer wg.Done()

	for j := range jobs {
		if err := processFile(j.path); err != nil {
			log.Printf("worker %d: failed on scenario %s: %v", id, j.path, err)
		}
		processedCount.Add(1)
	}
}

// processFile loads, validates, runs, and writes the trace for one
// scenario file.
func processFile(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	trace, err := RunScenario(cfg)
	if err != nil {
		return err
	}

	return WriteTraceFile(trace, cfg.Output.FileName)
}

// reportProgress prints an ASCII progress bar to stdout once a second
// until done is closed.
func reportProgress(processed *atomic.Int64, total int64, done <-chan struct{}) {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			count := processed.Load()
			percent := float64(count) / float64(total) * 100
			width := 50
			bar := strings.Repeat("=", int(float64(width)*float64(count)/float64(total)))
			padding := strings.Repeat(" ", width-len(bar))
			fmt.Printf("\r[%s%s] %.2f%% (%d/%d)", bar, padding, percent, count, total)
		case <-done:
			return
		}
	}
}

// Run walks dir for *.yaml scenario files and processes them across
// numWorkers goroutines, each building its own Solver/Kinematics/Driver
// values from its own config — there is no shared mutable core state
// between workers, only the job channel and the progress counter.
func Run(dir string, numWorkers int) error {
	jobs := make(chan job, 100)

	var wg sync.WaitGroup
	var processedCount atomic.Int64
	var totalFiles atomic.Int64

	for i := range numWorkers {
		wg.Add(1)
		go worker(i, jobs, &wg, &processedCount)
	}

	yamlFiles := []string{}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".yaml") {
			yamlFiles = append(yamlFiles, path)
			totalFiles.Add(1)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("batch: error walking config directory: %w", err)
	}
	if len(yamlFiles) == 0 {
		return fmt.Errorf("batch: no YAML scenario files found in directory: %s", dir)
	}

	total := totalFiles.Load()
	fmt.Printf("Found %d YAML scenario files to process\n", total)

	done := make(chan struct{})
	go reportProgress(&processedCount, total, done)

	for _, path := range yamlFiles {
		jobs <- job{path: path}
	}
	close(jobs)

	wg.Wait()
	close(done)

	fmt.Printf("\nCompleted processing %d YAML scenario files\n", processedCount.Load())
	return nil
}
