package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDataPath                  = "data-path"
	ConfigLexiconPath               = "lexicon-path"
	ConfigLetterDistributionPath    = "letter-distribution-path"
	ConfigDefaultLexicon            = "default-lexicon"
	ConfigDefaultLetterDistribution = "default-letter-distribution"
	ConfigLexiconEncoding           = "lexicon-encoding"
	ConfigDebug                     = "debug"
	ConfigCPUProfile                = "cpu-profile"
	ConfigGenWorkers                = "gen-workers"
)

type Config struct {
	*viper.Viper
	args []string
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(ConfigDataPath, "./data")
	v.SetDefault(ConfigLexiconPath, "./data/lexica")
	v.SetDefault(ConfigLetterDistributionPath, "./data/letterdistributions")
	v.SetDefault(ConfigDefaultLexicon, "NWL23")
	v.SetDefault(ConfigDefaultLetterDistribution, "english")
	v.SetDefault(ConfigLexiconEncoding, "utf-8")
	v.SetDefault(ConfigDebug, false)
	v.SetDefault(ConfigCPUProfile, "")
	v.SetDefault(ConfigGenWorkers, 4)
	return v
}

// DefaultConfig returns a config with only defaults set. Useful for tests.
func DefaultConfig() *Config {
	return &Config{Viper: newViper()}
}

// Load reads flags from args and GORDON_* environment variables, on top of
// the defaults. Flags win over the environment.
func (c *Config) Load(args []string) error {
	c.Viper = newViper()

	fs := pflag.NewFlagSet("gordon", pflag.ContinueOnError)
	fs.String(ConfigDataPath, c.GetString(ConfigDataPath), "directory holding data files")
	fs.String(ConfigLexiconPath, c.GetString(ConfigLexiconPath), "directory holding lexicon files")
	fs.String(ConfigLetterDistributionPath, c.GetString(ConfigLetterDistributionPath), "directory holding letter distribution files")
	fs.String(ConfigDefaultLexicon, c.GetString(ConfigDefaultLexicon), "the default lexicon to use")
	fs.String(ConfigDefaultLetterDistribution, c.GetString(ConfigDefaultLetterDistribution), "the default letter distribution to use. english, etc.")
	fs.String(ConfigLexiconEncoding, c.GetString(ConfigLexiconEncoding), "character encoding of word list files (utf-8, latin1, ...)")
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigCPUProfile, "", "file to write a CPU profile to")
	fs.Int(ConfigGenWorkers, c.GetInt(ConfigGenWorkers), "number of goroutines for batch generation")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.args = fs.Args()
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.SetEnvPrefix("gordon")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	return nil
}

// AdjustRelativePaths makes the data paths relative to the executable if
// they are relative paths and the current directory doesn't have them.
func (c *Config) AdjustRelativePaths(basepath string) {
	for _, key := range []string{ConfigDataPath, ConfigLexiconPath, ConfigLetterDistributionPath} {
		p := c.GetString(key)
		if filepath.IsAbs(p) {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			continue
		}
		adjusted := filepath.Join(basepath, p)
		log.Debug().Str("key", key).Str("path", adjusted).Msg("adjusted relative path")
		c.Set(key, adjusted)
	}
}

// PositionalArgs returns the arguments left over after flags were parsed.
func (c *Config) PositionalArgs() []string {
	return c.args
}
