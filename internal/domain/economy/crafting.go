package economy

// MaxCraftableCeiling bounds MaxCraftable for recipes with no ingredient
// requirements, so UI amount selectors have a finite upper limit.
const MaxCraftableCeiling = 9999

// CraftingService validates and executes recipes against a container. It is
// stateless; every operation takes the container it works on.
type CraftingService struct{}

// CanCraft reports whether one unit of the recipe output could be crafted
// right now: the recipe is unlocked and every ingredient tag is owned in
// sufficient quantity. A recipe without ingredients is craftable when
// unlocked.
func (CraftingService) CanCraft(c *Container, recipe Recipe) bool {
	if !recipe.Unlocked {
		return false
	}
	for tag, required := range recipe.Ingredients {
		if c.GetAmountByTag(tag) < required {
			return false
		}
	}
	return true
}

// MaxCraftable returns how many units of the output the container's
// materials support, capped at MaxCraftableCeiling.
func (CraftingService) MaxCraftable(c *Container, recipe Recipe) int {
	max := MaxCraftableCeiling
	for tag, required := range recipe.Ingredients {
		if required <= 0 {
			continue
		}
		n := c.GetAmountByTag(tag) / required
		if n < max {
			max = n
		}
	}
	return max
}

// Craft consumes quantity×ingredients from the container and adds
// quantity units of the output. The commit runs on a scratch copy of the
// container and is adopted only when every step succeeds, so a failed craft
// leaves the container byte-for-byte unchanged.
func (s CraftingService) Craft(c *Container, recipe Recipe, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidAmount
	}
	if !recipe.Unlocked {
		return ErrRecipeLocked
	}
	for tag, required := range recipe.Ingredients {
		if c.GetAmountByTag(tag) < required*quantity {
			return ErrInsufficientMaterials
		}
	}

	scratch := c.Clone()
	for tag, required := range recipe.Ingredients {
		if err := scratch.removeByTag(tag, required*quantity); err != nil {
			// Validated above; reaching this means the data model was
			// mutated behind the engine's back.
			return ErrInsufficientMaterials
		}
	}
	res, err := scratch.AddItem(recipe.Output, quantity)
	if err != nil {
		return err
	}
	if res.Overflow != 0 {
		return ErrInventoryFull
	}

	c.adopt(scratch)
	c.pending = append(c.pending, newEvent(EventCraftingCompleted, map[string]any{
		"output":   string(recipe.Output),
		"quantity": quantity,
	}))
	return nil
}
