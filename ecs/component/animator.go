package component

// Animator is a write-only parameter sink for the animation system: named
// bools, floats and triggers plus per-layer blend weights. Layer 0 is the
// base layer.
type Animator struct {
	Bools        map[string]bool
	Floats       map[string]float64
	Triggers     map[string]bool
	LayerWeights []float64
}

// Animator parameter names written by the player controller.
const (
	AnimParamLand  = "land"
	AnimParamSpeed = "speed"
	AnimParamJump  = "jump"

	AnimLayerBase = 0
	AnimLayerAir  = 1
)

var AnimatorComponent = NewComponent[Animator]()

func NewAnimator(layers int) *Animator {
	if layers < 1 {
		layers = 1
	}
	weights := make([]float64, layers)
	weights[AnimLayerBase] = 1
	return &Animator{
		Bools:        map[string]bool{},
		Floats:       map[string]float64{},
		Triggers:     map[string]bool{},
		LayerWeights: weights,
	}
}

func (a *Animator) SetBool(name string, v bool) {
	if a.Bools == nil {
		a.Bools = map[string]bool{}
	}
	a.Bools[name] = v
}

func (a *Animator) SetFloat(name string, v float64) {
	if a.Floats == nil {
		a.Floats = map[string]float64{}
	}
	a.Floats[name] = v
}

func (a *Animator) SetTrigger(name string) {
	if a.Triggers == nil {
		a.Triggers = map[string]bool{}
	}
	a.Triggers[name] = true
}

func (a *Animator) ResetTrigger(name string) {
	delete(a.Triggers, name)
}

// ConsumeTrigger reports whether name was set and clears it.
func (a *Animator) ConsumeTrigger(name string) bool {
	if !a.Triggers[name] {
		return false
	}
	delete(a.Triggers, name)
	return true
}

// SetLayerWeight grows the layer list when needed.
func (a *Animator) SetLayerWeight(layer int, weight float64) {
	if layer < 0 {
		return
	}
	for len(a.LayerWeights) <= layer {
		a.LayerWeights = append(a.LayerWeights, 0)
	}
	a.LayerWeights[layer] = weight
}

func (a *Animator) LayerWeight(layer int) float64 {
	if layer < 0 || layer >= len(a.LayerWeights) {
		return 0
	}
	return a.LayerWeights[layer]
}
