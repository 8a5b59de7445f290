//go:build integration

package bankdir

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"fincode/pkg/bic"
	"fincode/pkg/testutil/containers"
)

// countingDirectory records how often the inner directory is consulted, so
// the suite can tell cache hits from fall-throughs.
type countingDirectory struct {
	inner bic.Directory
	calls int
}

func (d *countingDirectory) BankEntries(ctx context.Context, cc, bank string) ([]bic.BankEntry, error) {
	d.calls++
	return d.inner.BankEntries(ctx, cc, bank)
}

func (d *countingDirectory) EntriesByBIC(ctx context.Context, code string) ([]bic.BankEntry, error) {
	d.calls++
	return d.inner.EntriesByBIC(ctx, code)
}

type RedisCacheSuite struct {
	suite.Suite
	rd    *containers.RedisContainer
	inner *countingDirectory
	cache *Cache
	ctx   context.Context
}

func TestRedisCacheSuite(t *testing.T) {
	suite.Run(t, new(RedisCacheSuite))
}

func (s *RedisCacheSuite) SetupSuite() {
	s.ctx = context.Background()
	s.rd = containers.GetRedis(s.T())
}

func (s *RedisCacheSuite) SetupTest() {
	s.Require().NoError(s.rd.FlushAll(s.ctx))
	s.inner = &countingDirectory{inner: NewMemory(Seed())}
	s.cache = NewCache(s.inner, s.rd.Client, time.Minute, nil)
}

func (s *RedisCacheSuite) TestSecondLookupServedFromCache() {
	first, err := s.cache.BankEntries(s.ctx, "FR", "30004")
	s.Require().NoError(err)
	s.Require().Len(first, 3)
	s.Equal(1, s.inner.calls)

	second, err := s.cache.BankEntries(s.ctx, "FR", "30004")
	s.Require().NoError(err)
	s.Equal(first, second)
	s.Equal(1, s.inner.calls, "second lookup should not reach the inner directory")
}

func (s *RedisCacheSuite) TestShortAndExpandedBICShareACacheKey() {
	_, err := s.cache.EntriesByBIC(s.ctx, "BNPAFRPP")
	s.Require().NoError(err)
	s.Equal(1, s.inner.calls)

	entries, err := s.cache.EntriesByBIC(s.ctx, "BNPAFRPPXXX")
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal(1, s.inner.calls)
}

func (s *RedisCacheSuite) TestEmptyResultIsCachedToo() {
	_, err := s.cache.BankEntries(s.ctx, "DE", "00000000")
	s.Require().NoError(err)
	_, err = s.cache.BankEntries(s.ctx, "DE", "00000000")
	s.Require().NoError(err)
	s.Equal(1, s.inner.calls)
}

func (s *RedisCacheSuite) TestCorruptPayloadFallsThrough() {
	key := "bankdir:bank:FR:30004"
	s.Require().NoError(s.rd.Client.Set(s.ctx, key, "not json", time.Minute).Err())

	entries, err := s.cache.BankEntries(s.ctx, "FR", "30004")
	s.Require().NoError(err)
	s.Len(entries, 3)
	s.Equal(1, s.inner.calls)
}
