package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	plt "github.com/phil-mansfield/pyplot"
	log "github.com/sirupsen/logrus"

	"github.com/erh3cq/pyxem"
	"github.com/erh3cq/pyxem/crystal"
	"github.com/erh3cq/pyxem/io"
	"github.com/erh3cq/pyxem/scattering"
)

// FileGroup contains utility files for logging, writing profiles to, and
// writing results to.
type FileGroup struct {
	log, prof, out *os.File
}

// Close closes the files inside FileGroup.
func (fg *FileGroup) Close() {
	if fg.out != nil {
		err := fg.out.Close()
		if err != nil { log.Fatal(err.Error()) }
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil { log.Fatal(err.Error()) }
	}

	if fg.log != nil {
		err := fg.log.Close()
		if err != nil { log.Fatal(err.Error()) }
	}
}

// Output returns the file results should be written to.
func (fg *FileGroup) Output() *os.File {
	if fg.out == nil { return os.Stdout }
	return fg.out
}

func main() {
	// The main function manages input sanitization and calls the secondary
	// main functions for each mode.

	var (
		simulateStr, profileStr string
		exampleConfig, logLevel string
	)
	vars := map[string]*string{
		"Simulate":      &simulateStr,
		"Profile":       &profileStr,
		"ExampleConfig": &exampleConfig,
	}

	flag.IntVar(
		&pyxem.NumCores, "Threads", runtime.NumCPU(),
		"Number of threads used when simulating several orientations. "+
			"Default is the number of logical cores.",
	)
	flag.StringVar(
		&simulateStr, "Simulate", "",
		"Configuration file for [Simulate] mode.",
	)
	flag.StringVar(
		&profileStr, "Profile", "",
		"Configuration file for [Profile] mode.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the "+
			"specified type to stdout. Accepted arguments are 'Simulate', "+
			"'Profile', and 'Structure'.",
	)
	flag.StringVar(
		&logLevel, "LogLevel", "info",
		"Minimum level of log messages. One of 'debug', 'info', 'warning', "+
			"or 'error'.",
	)

	flag.Parse()

	level, err := log.ParseLevel(logLevel)
	if err != nil { log.Fatal(err.Error()) }
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	// Figure out the mode and fail with a descriptive error if the user gave
	// incorrect flags.
	modeName, err := getModeName(vars)
	if err != nil { log.Fatal(err.Error()) }

	switch modeName {
	case "Simulate":
		wrap, err := io.ReadSimulateConfig(simulateStr)
		if err != nil { log.Fatal(err.Error()) }
		simulateMain(wrap)

	case "Profile":
		wrap, err := io.ReadProfileConfig(profileStr)
		if err != nil { log.Fatal(err.Error()) }
		profileMain(wrap)

	case "ExampleConfig":
		switch exampleConfig {
		case "Simulate":
			fmt.Println(io.ExampleSimulateFile)
		case "Profile":
			fmt.Println(io.ExampleProfileFile)
		case "Structure":
			fmt.Println(io.ExampleStructureFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'Simulate', 'Profile', and 'Structure'.",
			)
		}
	default:
		panic("Impossible")
	}
}

// getModeName returns the name of the mode and fails with a descriptive error
// if the user provided less or more than one mode flag.
func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" { setNames = append(setNames, name) }
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but pyxem only accepts one "+
				"flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

// simulateMain is the main function for simulating spot patterns.
func simulateMain(wrap *io.SimulateWrapper) {
	con := &wrap.Simulate
	fg := setupIO(&con.SharedConfig)
	defer fg.Close()

	s := readStructure(con.Structure)
	gen := newGenerator(&con.SharedConfig, wrap.DebyeWallerFactors())

	names, rots := wrap.Rotations()
	var sims []*pyxem.DiffractionSimulation
	if len(rots) == 0 {
		sim, err := gen.Simulate(s, con.ReciprocalRadius, con.WithDirectBeam)
		if err != nil { log.Fatal(err.Error()) }
		names, sims = []string{"pattern"}, []*pyxem.DiffractionSimulation{sim}
	} else {
		log.Infof("Simulating %d orientations with %d threads.",
			len(rots), pyxem.NumCores)
		var err error
		sims, err = gen.SimulateOrientations(
			s, con.ReciprocalRadius, con.WithDirectBeam, rots, pyxem.NumCores,
		)
		if err != nil { log.Fatal(err.Error()) }
	}

	for i, sim := range sims {
		if con.ValidCalibration() {
			var err error
			sim, err = sim.WithCalibration(con.Calibration)
			if err != nil { log.Fatal(err.Error()) }
		}

		log.WithFields(log.Fields{
			"orientation": names[i], "reflections": sim.Len(),
		}).Info("Simulated pattern.")

		err := io.WriteSimulation(fg.Output(), names[i], sim)
		if err != nil { log.Fatal(err.Error()) }
	}
}

// profileMain is the main function for computing powder profiles.
func profileMain(wrap *io.ProfileWrapper) {
	con := &wrap.Profile
	fg := setupIO(&con.SharedConfig)
	defer fg.Close()

	s := readStructure(con.Structure)
	gen := newGenerator(&con.SharedConfig, wrap.DebyeWallerFactors())

	prof, err := gen.Profile(
		s, con.ReciprocalRadius, con.MagnitudeTolerance, con.MinimumIntensity,
	)
	if err != nil { log.Fatal(err.Error()) }
	log.Infof("Profile has %d peaks.", prof.Len())

	err = io.WriteProfile(fg.Output(), prof)
	if err != nil { log.Fatal(err.Error()) }

	if con.ValidPlotFile() {
		plotProfile(prof, con.Structure, con.PlotFile)
		log.Infof("Writing plot to %s", con.PlotFile)
		plt.Execute()
	}
}

// setupIO creates a FileGroup which handles logging, profiling, and output.
func setupIO(con *io.SharedConfig) *FileGroup {
	var err error
	fg := new(FileGroup)

	// Set up log file.
	if con.ValidLogFile() {
		fg.log, err = os.Create(con.LogFile)
		if err != nil { log.Fatal(err.Error()) }
		log.SetOutput(fg.log)
	}

	// Set up profile file.
	if con.ValidProfileFile() {
		fg.prof, err = os.Create(con.ProfileFile)
		if err != nil { log.Fatal(err.Error()) }
		err = pprof.StartCPUProfile(fg.prof)
		if err != nil { log.Fatal(err.Error()) }
	}

	// Set up output file.
	if con.ValidOutput() {
		fg.out, err = os.Create(con.Output)
		if err != nil { log.Fatal(err.Error()) }
	}

	return fg
}

// readStructure reads a structure file and logs a summary of it.
func readStructure(fname string) *crystal.Structure {
	s, err := io.ReadStructure(fname)
	if err != nil { log.Fatal(err.Error()) }

	abc, angles := s.Lattice().Abc(), s.Lattice().Angles()
	log.WithFields(log.Fields{
		"file": fname, "sites": s.NumSites(),
		"elements": strings.Join(s.Elements(), " "),
	}).Infof("Read structure with a, b, c = %.4g %.4g %.4g and "+
		"alpha, beta, gamma = %.4g %.4g %.4g", abc[0], abc[1], abc[2],
		angles[0], angles[1], angles[2])
	return s
}

// newGenerator creates a DiffractionGenerator from a config file, merging
// any user-supplied scattering table into the default one.
func newGenerator(
	con *io.SharedConfig, dw map[string]float64,
) *pyxem.DiffractionGenerator {
	sf, err := pyxem.ParseShapeFactor(con.ShapeFactor)
	if err != nil { log.Fatal(err.Error()) }

	tab := scattering.Default()
	if con.ValidScatteringTable() {
		userTab, err := scattering.ReadTable(con.ScatteringTable)
		if err != nil { log.Fatal(err.Error()) }
		log.Debugf("Read scattering factors for %d elements from %s",
			userTab.Len(), con.ScatteringTable)
		tab = tab.Merge(userTab)
	}

	gen, err := pyxem.NewDiffractionGenerator(
		con.AcceleratingVoltage, con.MaxExcitationError,
		pyxem.WithScatteringTable(tab),
		pyxem.WithDebyeWaller(dw),
		pyxem.WithShapeFactor(sf),
	)
	if err != nil { log.Fatal(err.Error()) }

	log.Debugf("Electron wavelength is %.6g A", gen.Wavelength())
	return gen
}

// plotProfile creates a stick plot of a profile, labeling each peak with its
// families in the legend.
func plotProfile(prof *pyxem.ProfileSimulation, name, fname string) {
	plt.Figure(plt.FigSize(10, 5))

	gMax := 0.0
	for i, peak := range prof.Peaks() {
		g, I := peak.Magnitude, peak.Intensity
		plt.Plot(
			[]float64{g, g}, []float64{0, I}, plt.LW(2),
			plt.C(stickColors[i%len(stickColors)]),
			plt.Label(io.FamilyLabel(peak)),
		)
		if g > gMax { gMax = g }
	}

	plt.Title(fmt.Sprintf("Diffraction profile of %s", name))
	plt.XLabel(`$|g|$ $[{\rm \AA}^{-1}]$`, plt.FontSize(16))
	plt.YLabel(`$I$`, plt.FontSize(16))
	plt.Legend(plt.FontSize(8), plt.NCol(legendColumns(prof.Len())))

	plt.XLim(0, gMax*1.05)
	plt.YLim(0, 110)
	plt.SaveFig(fname)
}

var stickColors = []string{"k", "r", "b", "g", "m", "c", "y"}

// legendColumns returns the number of legend columns needed to keep the
// legend to at most 12 rows.
func legendColumns(n int) int {
	return (n + 11) / 12
}
