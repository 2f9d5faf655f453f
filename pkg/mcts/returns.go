package mcts

import "github.com/weavetree/weavetree/pkg/searchconfig"

func rewardSum(rewards []float64) float64 {
	var sum float64
	for _, r := range rewards {
		sum += r
	}
	return sum
}

// computeReturn implements phase 3, return computation, as a single
// dispatch point over the three searchconfig.ReturnType policies.
//
// rewardPrefixSum is always the plain, undiscounted sum of the rewards
// recorded along the tree path — a diagnostic shared by every policy.
// rolloutReturn and totalReturn are computed per policy:
//
//   - Discounted geometrically discounts both the path prefix and the
//     rollout continuation by gamma, with the rollout further scaled by
//     gamma^len(path) since it begins exactly that many steps deep.
//   - EpisodicUndiscounted and FixedHorizon sum both parts unchanged;
//     FixedHorizon's rollout is already length-capped by phase 2.
func computeReturn(cfg searchconfig.SearchConfig, path []pathStep, rolloutRewards []float64) (rewardPrefixSum, rolloutReturn, totalReturn float64) {
	prefixRewards := make([]float64, len(path))
	for i, s := range path {
		prefixRewards[i] = s.reward
	}
	rewardPrefixSum = rewardSum(prefixRewards)

	if cfg.ReturnType == searchconfig.Discounted {
		var prefixReturn float64
		gammaPow := 1.0
		for _, r := range prefixRewards {
			prefixReturn += gammaPow * r
			gammaPow *= cfg.Gamma
		}
		var rolloutDiscounted float64
		g := 1.0
		for _, r := range rolloutRewards {
			rolloutDiscounted += g * r
			g *= cfg.Gamma
		}
		rolloutReturn = gammaPow * rolloutDiscounted
		totalReturn = prefixReturn + rolloutReturn
		return rewardPrefixSum, rolloutReturn, totalReturn
	}

	// EpisodicUndiscounted, FixedHorizon.
	rolloutReturn = rewardSum(rolloutRewards)
	totalReturn = rewardPrefixSum + rolloutReturn
	return rewardPrefixSum, rolloutReturn, totalReturn
}
