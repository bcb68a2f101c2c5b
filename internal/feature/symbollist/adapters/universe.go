package adapters

import "stock_dashboard/internal/feature/symbollist/domain/entity"

// MockUniverse is the reference data the dashboard ships with.
func MockUniverse() []entity.Symbol {
	return []entity.Symbol{
		{Code: "AAPL", Name: "Apple Inc.", Price: 182.63, Change: 1.25, ChangePercent: 0.69, Volume: 59_382_400, MarketCap: 2_850_000_000_000, IsActive: true, SortKey: 1},
		{Code: "MSFT", Name: "Microsoft Corporation", Price: 402.56, Change: -3.28, ChangePercent: -0.81, Volume: 17_289_300, MarketCap: 2_990_000_000_000, IsActive: true, SortKey: 2},
		{Code: "GOOGL", Name: "Alphabet Inc.", Price: 171.19, Change: 0.96, ChangePercent: 0.56, Volume: 21_382_600, MarketCap: 2_140_000_000_000, IsActive: true, SortKey: 3},
		{Code: "AMZN", Name: "Amazon.com Inc.", Price: 178.87, Change: 2.45, ChangePercent: 1.39, Volume: 32_953_100, MarketCap: 1_850_000_000_000, IsActive: true, SortKey: 4},
		{Code: "TSLA", Name: "Tesla, Inc.", Price: 248.48, Change: -5.73, ChangePercent: -2.25, Volume: 93_732_000, MarketCap: 790_000_000_000, IsActive: true, SortKey: 5},
		{Code: "META", Name: "Meta Platforms, Inc.", Price: 487.98, Change: 8.21, ChangePercent: 1.71, Volume: 13_587_200, MarketCap: 1_240_000_000_000, IsActive: true, SortKey: 6},
		{Code: "NVDA", Name: "NVIDIA Corporation", Price: 116.01, Change: 1.55, ChangePercent: 1.35, Volume: 184_723_600, MarketCap: 2_860_000_000_000, IsActive: true, SortKey: 7},
		{Code: "JPM", Name: "JPMorgan Chase & Co.", Price: 196.43, Change: -0.98, ChangePercent: -0.50, Volume: 8_937_400, MarketCap: 567_000_000_000, IsActive: true, SortKey: 8},
	}
}
