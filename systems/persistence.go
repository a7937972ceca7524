package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"

	"github.com/mottasm/rollick/physics"
)

// SavedTuning is the physics parameter set stored on disk, so tweaks made
// in the tuning panel survive a restart.
type SavedTuning struct {
	Acc      float32 `json:"acc"`
	Dec      float32 `json:"dec"`
	Frc      float32 `json:"frc"`
	Topspeed float32 `json:"topspeed"`
	Jmp      float32 `json:"jmp"`
	Grv      float32 `json:"grv"`
	Slp      float32 `json:"slp"`
	Airdrag  float32 `json:"airdrag"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for tuning storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "rollick",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadTuning loads the saved parameters from disk; nil means defaults.
func LoadTuning() (*SavedTuning, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("tuning")
	if err != nil {
		log.Printf("Warning: Could not load tuning: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var tuning SavedTuning
	if err := json.Unmarshal(data, &tuning); err != nil {
		log.Printf("Warning: Could not parse saved tuning: %v", err)
		return nil, err
	}
	return &tuning, nil
}

// SaveTuning writes the actor's current parameters to disk.
func SaveTuning(pa *physics.Actor) {
	if !gdataInitialized || gdataManager == nil {
		return
	}

	tuning := SavedTuning{
		Acc:      pa.Acc(),
		Dec:      pa.Dec(),
		Frc:      pa.Frc(),
		Topspeed: pa.Topspeed(),
		Jmp:      pa.Jmp(),
		Grv:      pa.Grv(),
		Slp:      pa.Slp(),
		Airdrag:  pa.Airdrag(),
	}
	data, err := json.Marshal(&tuning)
	if err != nil {
		log.Printf("Warning: Could not encode tuning: %v", err)
		return
	}
	if err := gdataManager.SaveItem("tuning", data); err != nil {
		log.Printf("Warning: Could not save tuning: %v", err)
	}
}

// ApplyTuning writes a saved parameter set through the actor's setters.
func ApplyTuning(pa *physics.Actor, tuning *SavedTuning) {
	if tuning == nil {
		return
	}
	pa.SetAcc(tuning.Acc)
	pa.SetDec(tuning.Dec)
	pa.SetFrc(tuning.Frc)
	pa.SetTopspeed(tuning.Topspeed)
	pa.SetJmp(tuning.Jmp)
	pa.SetGrv(tuning.Grv)
	pa.SetSlp(tuning.Slp)
	pa.SetAirdrag(tuning.Airdrag)
}
