package main

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-warband/internal/errors"
)

var combatLine = regexp.MustCompile(`^(\w+ attacks \w+\. Damage: \d+|No arrows|No bolts)$`)

type WarbandCmdTestSuite struct {
	suite.Suite
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func TestWarbandCmdSuite(t *testing.T) {
	suite.Run(t, new(WarbandCmdTestSuite))
}

func (s *WarbandCmdTestSuite) SetupTest() {
	s.stdout = &bytes.Buffer{}
	s.stderr = &bytes.Buffer{}
}

func (s *WarbandCmdTestSuite) execute(cfg *Config, args ...string) error {
	cmd := newRootCmd(cfg)
	cmd.SetOut(s.stdout)
	cmd.SetErr(s.stderr)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func (s *WarbandCmdTestSuite) TestLoadConfigDefaults() {
	cfg, err := loadConfig()
	s.Require().NoError(err)

	s.Assert().Equal(500*time.Millisecond, cfg.Tick)
	s.Assert().Equal(5*time.Second, cfg.Duration)
	s.Assert().Equal(3, cfg.Rounds)
	s.Assert().Equal(LogFormatText, cfg.LogFormat)
	s.Assert().Equal("info", cfg.LogLevel)
	s.Assert().NoError(cfg.Validate())
}

func (s *WarbandCmdTestSuite) TestLoadConfigFromEnv() {
	s.T().Setenv("WARBAND_TICK", "10ms")
	s.T().Setenv("WARBAND_DURATION", "1s")
	s.T().Setenv("WARBAND_ROUNDS", "7")
	s.T().Setenv("WARBAND_LOG_FORMAT", "json")

	cfg, err := loadConfig()
	s.Require().NoError(err)

	s.Assert().Equal(10*time.Millisecond, cfg.Tick)
	s.Assert().Equal(time.Second, cfg.Duration)
	s.Assert().Equal(7, cfg.Rounds)
	s.Assert().Equal(LogFormatJSON, cfg.LogFormat)
}

func (s *WarbandCmdTestSuite) TestLoadConfigBadEnv() {
	s.T().Setenv("WARBAND_ROUNDS", "many")

	cfg, err := loadConfig()
	s.Assert().Nil(cfg)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *WarbandCmdTestSuite) TestInvalidFlags() {
	testCases := []struct {
		name     string
		args     []string
		contains string
	}{
		{"zero rounds", []string{"skirmish", "--rounds", "0"}, "Rounds: must be at least 1"},
		{"negative tick", []string{"skirmish", "--tick=-1s"}, "Tick: must be positive"},
		{"unknown format", []string{"skirmish", "--log-format", "xml"}, "LogFormat:"},
		{"unknown level", []string{"skirmish", "--log-level", "loud"}, "LogLevel:"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg, err := loadConfig()
			s.Require().NoError(err)

			err = s.execute(cfg, tc.args...)
			s.Require().Error(err)
			s.Assert().True(errors.IsInvalidArgument(err))
			s.Assert().Contains(err.Error(), tc.contains)
		})
	}
}

func (s *WarbandCmdTestSuite) TestSkirmishPrintsCombatLines() {
	cfg, err := loadConfig()
	s.Require().NoError(err)

	err = s.execute(cfg,
		"skirmish",
		"--tick", "5ms",
		"--duration", "40ms",
		"--rounds", "1",
		"--log-format", "json",
	)
	s.Require().NoError(err)

	out := strings.TrimSpace(s.stdout.String())
	if out != "" {
		for _, line := range strings.Split(out, "\n") {
			s.Assert().Regexp(combatLine, line)
		}
	}

	s.Assert().Contains(s.stderr.String(), `"msg":"Warband mustered"`)
	s.Assert().Contains(s.stderr.String(), `"msg":"Skirmish summary"`)
	s.Assert().NotContains(s.stderr.String(), `"msg":"Combat event"`)
}

func (s *WarbandCmdTestSuite) TestSkirmishDebugLogsCombatEvents() {
	cfg, err := loadConfig()
	s.Require().NoError(err)

	err = s.execute(cfg,
		"skirmish",
		"--tick", "2ms",
		"--duration", "50ms",
		"--rounds", "1",
		"--log-level", "debug",
	)
	s.Require().NoError(err)

	lines := strings.Count(s.stdout.String(), "\n")
	s.Assert().Equal(lines, strings.Count(s.stderr.String(), "msg=\"Combat event\""))
}
