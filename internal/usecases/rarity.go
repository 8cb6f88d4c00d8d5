package usecases

import (
	"encoding/binary"
	"math"
	"strings"

	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/entities"
	domainerrors "github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/errors"
)

// SelectWeighted draws one value from a trait type using 4 bytes of the
// seed starting at offset (wrapping around the 32-byte seed). Values whose
// supply is exhausted are skipped; when the walk falls through it falls
// back to the first value that still has supply.
func SelectWeighted(traitType *entities.TraitType, seed []byte, offset int) (int, error) {
	if len(traitType.Values) == 0 {
		return 0, domainerrors.ErrInvalidTraitConfig
	}

	var totalWeight uint32
	remaining := 0
	for i := range traitType.Values {
		if traitType.Values[i].HasRemainingSupply() {
			totalWeight += uint32(traitType.Values[i].RarityWeight)
			remaining++
		}
	}
	if remaining == 0 || totalWeight == 0 {
		return 0, domainerrors.ErrInvalidTraitConfig
	}

	draw := seedDraw(seed, offset) % totalWeight

	var cumulative uint32
	for i := range traitType.Values {
		if !traitType.Values[i].HasRemainingSupply() {
			continue
		}
		cumulative += uint32(traitType.Values[i].RarityWeight)
		if cumulative > draw {
			return i, nil
		}
	}

	// Zero-weight tail values can leave the walk unfinished.
	for i := range traitType.Values {
		if traitType.Values[i].HasRemainingSupply() {
			return i, nil
		}
	}
	return 0, domainerrors.ErrTraitSupplyExceeded
}

// seedDraw reads a little-endian u32 from 4 seed bytes at offset mod 32,
// wrapping at the seed boundary.
func seedDraw(seed []byte, offset int) uint32 {
	var buf [4]byte
	n := len(seed)
	if n == 0 {
		return 0
	}
	start := offset % n
	for i := 0; i < 4; i++ {
		buf[i] = seed[(start+i)%n]
	}
	return binary.LittleEndian.Uint32(buf[:])
}

// AutoGenerate draws one value per trait type, each with its own seed
// offset, then verifies every required trait type ended up represented.
// The returned indices parallel the selection for supply accounting.
// A failed draw fails the whole generation.
func AutoGenerate(traitTypes []*entities.TraitType, seed []byte) ([]entities.SelectedTrait, []int, error) {
	selected := make([]entities.SelectedTrait, 0, len(traitTypes))
	indices := make([]int, 0, len(traitTypes))
	chosen := make(map[string]bool, len(traitTypes))

	for i, tt := range traitTypes {
		idx, err := SelectWeighted(tt, seed, i*4)
		if err != nil {
			return nil, nil, err
		}
		selected = append(selected, entities.SelectedTrait{
			TraitType:  tt.Name,
			TraitValue: tt.Values[idx].Name,
		})
		indices = append(indices, idx)
		chosen[tt.Name] = true
	}

	for _, tt := range traitTypes {
		if tt.IsRequired && !chosen[tt.Name] {
			return nil, nil, domainerrors.ErrRequiredTraitMissing
		}
	}
	return selected, indices, nil
}

// ValidateManual checks a caller-supplied trait selection against the
// collection's trait types: required types present, every pair resolvable,
// and every chosen value still in supply.
func ValidateManual(traitTypes []*entities.TraitType, provided []entities.SelectedTrait) error {
	byName := make(map[string]*entities.TraitType, len(traitTypes))
	for _, tt := range traitTypes {
		byName[tt.Name] = tt
	}

	providedTypes := make(map[string]bool, len(provided))
	for _, p := range provided {
		providedTypes[p.TraitType] = true
	}
	for _, tt := range traitTypes {
		if tt.IsRequired && !providedTypes[tt.Name] {
			return domainerrors.ErrRequiredTraitMissing
		}
	}

	for _, p := range provided {
		tt, ok := byName[p.TraitType]
		if !ok {
			return domainerrors.ErrTraitTypeNotFound
		}
		found := false
		for i := range tt.Values {
			if tt.Values[i].Name != p.TraitValue {
				continue
			}
			found = true
			if !tt.Values[i].HasRemainingSupply() {
				return domainerrors.ErrTraitSupplyExceeded
			}
			break
		}
		if !found {
			return domainerrors.ErrTraitValueNotFound
		}
	}
	return nil
}

// RarityScore scores a trait selection. Rarer values (lower weight relative
// to the type's max) earn bigger bonuses, and nearly-sold-out values earn a
// scarcity bonus on top. Capped at 1000.
func RarityScore(traitTypes []*entities.TraitType, selected []entities.SelectedTrait) uint16 {
	byName := make(map[string]*entities.TraitType, len(traitTypes))
	for _, tt := range traitTypes {
		byName[tt.Name] = tt
	}

	score := uint32(RarityBaseScore)
	for _, sel := range selected {
		tt, ok := byName[sel.TraitType]
		if !ok {
			continue
		}

		var maxWeight uint16
		for i := range tt.Values {
			if tt.Values[i].RarityWeight > maxWeight {
				maxWeight = tt.Values[i].RarityWeight
			}
		}

		for i := range tt.Values {
			value := &tt.Values[i]
			if value.Name != sel.TraitValue {
				continue
			}

			var bonus uint32
			if value.RarityWeight == 0 {
				bonus = uint32(ZeroWeightBonus)
			} else {
				// Weight ratio is scaled before truncation so e.g.
				// 100/40 scores 12, not 10.
				bonus = uint32(float64(maxWeight) / float64(value.RarityWeight) * 5)
			}
			score += bonus

			if value.AvailableSupply.Valid &&
				value.AvailableSupply.Uint32 < ScarcityThreshold &&
				value.UsedSupply > 0 {
				score += (ScarcityThreshold - value.AvailableSupply.Uint32) / 10
			}
			break
		}
	}

	if score > uint32(RarityScoreCap) {
		return RarityScoreCap
	}
	return uint16(score)
}

// FusionBoost combines parent rarity scores into a bounded bonus weighted
// toward the strongest parent.
func FusionBoost(parentScores []uint16) uint16 {
	if len(parentScores) == 0 {
		return 0
	}

	var highest, sum uint32
	for _, s := range parentScores {
		if uint32(s) > highest {
			highest = uint32(s)
		}
		sum += uint32(s)
	}
	avg := float64(sum) / float64(len(parentScores))

	boost := math.Round(float64(highest)*0.6 + avg*0.4)
	if boost > float64(FusionBoostCap) {
		return FusionBoostCap
	}
	return uint16(boost)
}

// fusionMultiplier returns the rarity multiplier for a fusion level
func fusionMultiplier(level uint8) float64 {
	switch level {
	case 0:
		return 1.0
	case 1:
		return 1.1
	case 2:
		return 1.2
	case 3:
		return 1.35
	default:
		return 1.5
	}
}

// FusedRarity scores a fused NFT: the base selection score scaled by the
// fusion level multiplier plus the parents' boost, capped at 2000.
func FusedRarity(traitTypes []*entities.TraitType, selected []entities.SelectedTrait, parentScores []uint16, fusionLevel uint8) uint16 {
	base := RarityScore(traitTypes, selected)
	final := math.Round(float64(base)*fusionMultiplier(fusionLevel)) + float64(FusionBoost(parentScores))
	if final > float64(FusedRarityCap) {
		return FusedRarityCap
	}
	return uint16(final)
}

// GenerateMetadataURI builds the stored metadata URI for a trait selection
// according to the collection's configured format. Every pair must resolve
// to a known trait type and value.
func GenerateMetadataURI(config *entities.CollectionTraitConfig, selected []entities.SelectedTrait, traitTypes []*entities.TraitType) (string, error) {
	switch config.MetadataFormat {
	case entities.MetadataFormatStandardJson:
		parts := make([]string, 0, len(selected)+1)
		parts = append(parts, strings.TrimRight(config.BaseURI, "/"))
		for _, sel := range selected {
			value, err := findTraitValue(traitTypes, sel)
			if err != nil {
				return "", err
			}
			if value.URIPostfix != "" {
				parts = append(parts, value.URIPostfix)
			}
		}
		return strings.Join(parts, "/"), nil
	case entities.MetadataFormatCompressedJson:
		pairs := make([]string, 0, len(selected))
		for _, sel := range selected {
			if _, err := findTraitValue(traitTypes, sel); err != nil {
				return "", err
			}
			pairs = append(pairs, sel.TraitType+":"+sel.TraitValue)
		}
		return strings.TrimRight(config.BaseURI, "/") + "/" + strings.Join(pairs, "_"), nil
	default:
		return config.BaseURI, nil
	}
}

func findTraitValue(traitTypes []*entities.TraitType, sel entities.SelectedTrait) (*entities.TraitValue, error) {
	for _, tt := range traitTypes {
		if tt.Name != sel.TraitType {
			continue
		}
		for i := range tt.Values {
			if tt.Values[i].Name == sel.TraitValue {
				return &tt.Values[i], nil
			}
		}
		return nil, domainerrors.ErrTraitValueNotFound
	}
	return nil, domainerrors.ErrTraitTypeNotFound
}
