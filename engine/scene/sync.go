package scene

import (
	"fmt"
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-scene/engine/camera"
	"github.com/Carmen-Shannon/oxy-scene/engine/light"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/uniform"
)

// Block member names staged by the scene.
const (
	FieldAmbientColor     = "ambientLight.color"
	FieldAmbientIntensity = "ambientLight.intensity"

	FieldDirectDirection = "directLight.direction"
	FieldDirectColor     = "directLight.color"
	FieldDirectIntensity = "directLight.intensity"

	FieldPointColor         = "pointLight.color"
	FieldPointPower         = "pointLight.power"
	FieldPointSpecularColor = "pointLight.specularColor"
	FieldPointIntensity     = "pointLight.intensity"
	FieldPointPosition      = "pointLightPosition"

	FieldProjectionMatrix  = "projectionMatrix"
	FieldViewWorldPosition = "viewWorldPosition"
)

// stagingPlan is what one update writes: values per block, and the order in which
// the touched blocks are pushed for every material.
type stagingPlan struct {
	values map[string]uniform.Values
	push   []string
}

// lightStaging turns a light into a stagingPlan by kind.
type lightStaging struct {
	plan stagingPlan
}

var _ light.Visitor = &lightStaging{}

func (ls *lightStaging) VisitAmbient(l light.Light) error {
	ls.plan = stagingPlan{
		values: map[string]uniform.Values{
			uniform.BlockLights: {
				FieldAmbientColor:     l.Color(),
				FieldAmbientIntensity: l.Intensity(),
			},
		},
		push: []string{uniform.BlockLights},
	}
	return nil
}

func (ls *lightStaging) VisitDirectional(l light.Light) error {
	ls.plan = stagingPlan{
		values: map[string]uniform.Values{
			uniform.BlockLights: {
				FieldDirectDirection: l.Direction(),
				FieldDirectColor:     l.Color(),
				FieldDirectIntensity: l.Intensity(),
			},
		},
		push: []string{uniform.BlockLights},
	}
	return nil
}

func (ls *lightStaging) VisitPoint(l light.Light) error {
	ls.plan = stagingPlan{
		values: map[string]uniform.Values{
			uniform.BlockLights: {
				FieldPointColor:         l.Color(),
				FieldPointPower:         l.Power(),
				FieldPointSpecularColor: l.SpecularColor(),
				FieldPointIntensity:     l.Intensity(),
			},
			uniform.BlockPointLight: {
				FieldPointPosition: l.Position(),
			},
		},
		// the vertex-stage block goes first
		push: []string{uniform.BlockPointLight, uniform.BlockLights},
	}
	return nil
}

func (s *scene) SyncLights() error {
	var errs []error
	for _, l := range s.lights {
		var ls lightStaging
		if err := l.Accept(&ls); err != nil {
			errs = append(errs, err)
			continue
		}
		if err := s.apply(ls.plan); err != nil {
			errs = append(errs, fmt.Errorf("sync %s light %d: %w", l.Kind(), l.ID(), err))
		}
	}
	return errors.Join(errs...)
}

// resetLights zeroes and pushes the Lights and PointLight blocks of every material so
// a removed light leaves nothing behind, then re-runs light synchronization.
func (s *scene) resetLights() error {
	err := s.store.Range(func(m material.Material, set *uniform.Set) error {
		set.PointLight.Reset()
		set.Lights.Reset()
		if err := s.store.Update(m.ProgramInfo(), set.PointLight); err != nil {
			return err
		}
		return s.store.Update(m.ProgramInfo(), set.Lights)
	})
	return errors.Join(err, s.SyncLights())
}

func (s *scene) UpdateProjectionMatrix(m math32.Matrix4) error {
	return s.apply(stagingPlan{
		values: map[string]uniform.Values{
			uniform.BlockProjection: {FieldProjectionMatrix: m},
		},
		push: []string{uniform.BlockProjection},
	})
}

func (s *scene) UpdateCameraPosition(p math32.Vector3) error {
	return s.apply(stagingPlan{
		values: map[string]uniform.Values{
			uniform.BlockView: {FieldViewWorldPosition: p},
		},
		push: []string{uniform.BlockView},
	})
}

func (s *scene) SyncCamera(cam camera.Camera) error {
	return errors.Join(
		s.UpdateProjectionMatrix(cam.ProjectionMatrix()),
		s.UpdateCameraPosition(cam.Position()),
	)
}

// apply stages plan into every material's set, then pushes the touched blocks in
// store order. Staging is CPU-only, so it may run on the staging pool; pushes always
// run on the calling goroutine. A material whose staging failed is not pushed.
//
// Parameters:
//   - plan: the values to stage and the push order
//
// Returns:
//   - error: the joined staging and push errors
func (s *scene) apply(plan stagingPlan) error {
	mats := s.store.Materials()
	sets := make([]*uniform.Set, len(mats))
	for i, m := range mats {
		sets[i], _ = s.store.Get(m)
	}
	stageErrs := s.stage(plan, sets)

	var errs []error
	for i, m := range mats {
		if stageErrs[i] != nil {
			errs = append(errs, stageErrs[i])
			continue
		}
		for _, name := range plan.push {
			if err := s.store.Update(m.ProgramInfo(), sets[i].Block(name)); err != nil {
				errs = append(errs, err)
				break
			}
		}
	}
	return errors.Join(errs...)
}

// stage writes plan's values into each set's blocks. With a staging pool configured
// the sets are staged concurrently; every set owns its blocks, so tasks share nothing.
//
// Parameters:
//   - plan: the values to stage
//   - sets: the sets to stage into
//
// Returns:
//   - []error: the staging error per set, indexed like sets
func (s *scene) stage(plan stagingPlan, sets []*uniform.Set) []error {
	errs := make([]error, len(sets))
	stageSet := func(i int) {
		for _, name := range plan.push {
			if err := sets[i].Block(name).Stage(plan.values[name]); err != nil {
				errs[i] = err
				return
			}
		}
	}

	if s.stagingPool == nil || len(sets) < 2 {
		for i := range sets {
			stageSet(i)
		}
		return errs
	}

	// A WaitGroup barrier, since pool workers outlive a single sync.
	var wg sync.WaitGroup
	for i := range sets {
		wg.Add(1)
		idx := i
		s.stagingPool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				stageSet(idx)
				return nil, nil
			},
		})
	}
	wg.Wait()
	return errs
}
