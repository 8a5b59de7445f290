//go:build integration

package bankdir

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"fincode/pkg/bic"
	"fincode/pkg/testutil/containers"
)

type PostgresDirectorySuite struct {
	suite.Suite
	pg  *containers.PostgresContainer
	dir *Postgres
	ctx context.Context
}

func TestPostgresDirectorySuite(t *testing.T) {
	suite.Run(t, new(PostgresDirectorySuite))
}

func (s *PostgresDirectorySuite) SetupSuite() {
	s.ctx = context.Background()
	s.pg = containers.GetPostgres(s.T())
	s.dir = NewPostgres(s.pg.Pool)
}

func (s *PostgresDirectorySuite) SetupTest() {
	s.Require().NoError(s.pg.TruncateTables(s.ctx, "bank_directory"))
	for _, e := range Seed() {
		_, err := s.pg.Pool.Exec(s.ctx,
			`INSERT INTO bank_directory (country_code, bank_code, bic, bank_name) VALUES ($1, $2, $3, $4)`,
			e.CountryCode, e.BankCode, e.BIC, e.BankName)
		s.Require().NoError(err)
	}
}

func (s *PostgresDirectorySuite) TestBankEntriesReturnsRowsInInsertionOrder() {
	entries, err := s.dir.BankEntries(s.ctx, "FR", "30004")
	s.Require().NoError(err)
	s.Require().Len(entries, 3)
	s.Equal("BNPAFRPP", entries[0].BIC)
	s.Equal("BNPAFRPPIFN", entries[1].BIC)
	s.Equal("BNPAFRPPCRN", entries[2].BIC)
}

func (s *PostgresDirectorySuite) TestBankEntriesNormalizesInput() {
	entries, err := s.dir.BankEntries(s.ctx, "de", " 37040044 ")
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal("COBADEFFXXX", entries[0].BIC)
}

func (s *PostgresDirectorySuite) TestBankEntriesUnknownCodeIsEmpty() {
	entries, err := s.dir.BankEntries(s.ctx, "DE", "00000000")
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *PostgresDirectorySuite) TestEntriesByBICMatchesShortAndExpandedForms() {
	short, err := s.dir.EntriesByBIC(s.ctx, "BNPAFRPP")
	s.Require().NoError(err)
	long, err := s.dir.EntriesByBIC(s.ctx, "BNPAFRPPXXX")
	s.Require().NoError(err)

	s.Require().Len(short, 1)
	s.Equal(short, long)
	s.Equal("30004", short[0].BankCode)
}

func (s *PostgresDirectorySuite) TestEntriesByBICBranchSpecific() {
	entries, err := s.dir.EntriesByBIC(s.ctx, "HBUKGB41LDS")
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal("HBUK", entries[0].BankCode)
}

func (s *PostgresDirectorySuite) TestResolverWorksAgainstPostgres() {
	code, err := bic.FromBankCode(s.ctx, s.dir, "FR", "30004")
	s.Require().NoError(err)
	s.Equal("BNPAFRPP", code.String())
}
