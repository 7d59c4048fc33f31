/*
Copyright © 2019 the Radial authors.
This file is part of Radial.

Radial is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Radial is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Radial.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package radialutil wires the radial library into a command-line
// interface.
package radialutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/earthmodel/radial"
	"github.com/lnashier/viper"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to Radial.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "ModelFile",
			usage: `
              ModelFile is the model to operate on: the name of a built-in
              model (e.g. 'prem'), the path to a tvel file, or the path to a
              Mineos tabular deck. The path can include environment variables.`,
			shorthand:  "m",
			defaultVal: "prem",
			flagsets: []*pflag.FlagSet{evalCmd.Flags(), convertCmd.Flags(),
				describeCmd.Flags(), plotCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path to the desired CSV output location. It
              can include environment variables.`,
			shorthand:  "o",
			defaultVal: "radial_output.csv",
			flagsets:   []*pflag.FlagSet{evalCmd.Flags()},
		},
		{
			name: "OutputVariables",
			usage: `
              OutputVariables specifies which quantities should be included
              in the output file, as a mapping from column names to
              expressions over the model's property names, the derived
              quantities 'mass', 'gravity', and 'pressure', and the sample
              position 'radius' and 'depth'.`,
			defaultVal: map[string]string{
				"vp":  "vp",
				"vs":  "vs",
				"rho": "rho",
			},
			flagsets: []*pflag.FlagSet{evalCmd.Flags()},
		},
		{
			name: "Spacing",
			usage: `
              Spacing is the radius sampling interval in kilometers.`,
			defaultVal: 10.0,
			flagsets:   []*pflag.FlagSet{evalCmd.Flags(), convertCmd.Flags(), plotCmd.Flags()},
		},
		{
			name: "To",
			usage: `
              To is the model variant to convert to. Valid options are
              'stepped', 'linear', and 'polynomial'.`,
			defaultVal: "linear",
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "Order",
			usage: `
              Order is the polynomial order to use when converting to the
              polynomial variant.`,
			defaultVal: 3,
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "ConvertedFile",
			usage: `
              ConvertedFile is the path the converted model should be written
              to. A '.tvel' extension selects the tvel format; anything else
              is written as a Mineos tabular deck.`,
			defaultVal: "radial_converted.tvel",
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "Title",
			usage: `
              Title is the title line written to converted model files.`,
			defaultVal: "Converted model",
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "PlotFile",
			usage: `
              PlotFile is the path to the desired plot location. The
              extension selects the image format (e.g. .png, .svg, .pdf).`,
			defaultVal: "radial_profile.png",
			flagsets:   []*pflag.FlagSet{plotCmd.Flags()},
		},
		{
			name: "PlotVariables",
			usage: `
              PlotVariables is the list of properties to include in the
              profile plot.`,
			defaultVal: []string{"vp", "vs", "rho"},
			flagsets:   []*pflag.FlagSet{plotCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("RADIAL")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case []string:
				if option.shorthand == "" {
					set.StringSlice(option.name, option.defaultVal.([]string), option.usage)
				} else {
					set.StringSliceP(option.name, option.shorthand, option.defaultVal.([]string), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			case map[string]string:
				b := bytes.NewBuffer(nil)
				e := json.NewEncoder(b)
				e.Encode(option.defaultVal)
				s := string(b.Bytes())
				if option.shorthand == "" {
					set.String(option.name, s, option.usage)
				} else {
					set.StringP(option.name, option.shorthand, s, option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(evalCmd)
	Root.AddCommand(convertCmd)
	Root.AddCommand(describeCmd)
	Root.AddCommand(plotCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("radial: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "radial",
	Short: "A radially symmetric planetary structure model.",
	Long: `Radial evaluates one-dimensional planetary structure models: seismic
velocities, density, attenuation, and the bulk quantities derived from them.
Use the subcommands specified below to access the model functionality.

Refer to the subcommand documentation for configuration options and default
settings. Configuration can be changed by using a configuration file (and
providing the path to the file using the --config flag), by using command-line
arguments, or by setting environment variables in the format 'RADIAL_var'
where 'var' is the name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of Radial.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("Radial v%s\n", radial.Version)
	},
	DisableAutoGenTag: true,
}

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Sample a model to a CSV file.",
	Long: `eval samples the model on a regular radius grid and writes the
evaluated output expressions to a CSV file, one row per radius.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := LoadModel(os.ExpandEnv(Cfg.GetString("ModelFile")))
		if err != nil {
			return err
		}
		return Eval(m, os.ExpandEnv(Cfg.GetString("OutputFile")),
			GetStringMapString("OutputVariables", Cfg), Cfg.GetFloat64("Spacing"))
	},
	DisableAutoGenTag: true,
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a model between variants and file formats.",
	Long: `convert reads a model, converts it to the variant given by --To,
and writes it back out in the file format implied by the ConvertedFile
extension. Variants that the node-based file formats cannot represent
directly are resampled onto nodes before writing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := LoadModel(os.ExpandEnv(Cfg.GetString("ModelFile")))
		if err != nil {
			return err
		}
		return Convert(m, Cfg.GetString("To"),
			os.ExpandEnv(Cfg.GetString("ConvertedFile")), Cfg.GetString("Title"),
			Cfg.GetFloat64("Spacing"), Cfg.GetInt("Order"))
	},
	DisableAutoGenTag: true,
}

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print a summary of a model.",
	Long: `describe prints the structure of a model together with its bulk
derived quantities: surface radius, layer and discontinuity structure, total
mass, surface gravity, and moment of inertia factor.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := LoadModel(os.ExpandEnv(Cfg.GetString("ModelFile")))
		if err != nil {
			return err
		}
		return Describe(m, cmd.OutOrStdout())
	},
	DisableAutoGenTag: true,
}

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot model property profiles.",
	Long: `plot draws the selected properties of a model as functions of
radius and saves the figure to PlotFile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := LoadModel(os.ExpandEnv(Cfg.GetString("ModelFile")))
		if err != nil {
			return err
		}
		return Plot(m, Cfg.GetStringSlice("PlotVariables"),
			Cfg.GetFloat64("Spacing"), os.ExpandEnv(Cfg.GetString("PlotFile")))
	},
	DisableAutoGenTag: true,
}
