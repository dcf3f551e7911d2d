package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/flowsight/flowsight-contract/rpc/curation"
	"github.com/flowsight/flowsight-contract/rpc/flow"
	"github.com/flowsight/flowsight-contract/rpc/relay"
	"github.com/flowsight/flowsight-contract/rpc/spotlight"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

type flowState struct {
	TotalSupply string `json:"total_supply"`
}

type curationState struct {
	MinStake        string `json:"min_stake"`
	SlashPercentage string `json:"slash_percentage_bps"`
	TotalStaked     string `json:"total_staked"`
	TotalSlashed    string `json:"total_slashed"`
	ReportCount     string `json:"report_count"`
	RewardPool      string `json:"reward_pool"`
	Paused          bool   `json:"paused"`
}

type bidState struct {
	Entity    string `json:"entity"`
	Bidder    string `json:"bidder"`
	Amount    string `json:"amount"`
	Timestamp string `json:"timestamp"`
	Active    bool   `json:"active"`
}

type spotlightState struct {
	MinBid      string     `json:"min_bid"`
	TotalBurned string     `json:"total_burned"`
	Paused      bool       `json:"paused"`
	Bids        []bidState `json:"bids"`
}

type relayState struct {
	Administrator string `json:"administrator"`
}

// snapshot is the full public state of the FlowSight contract set at a
// single block.
type snapshot struct {
	Block     uint32         `json:"block"`
	Flow      flowState      `json:"flow"`
	Curation  curationState  `json:"curation"`
	Spotlight spotlightState `json:"spotlight"`
	Relay     relayState     `json:"relay"`
}

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	flowHashBlob := flag.String("flow", "", "Script hash of the FLOW token contract (LE)")
	curationHashBlob := flag.String("curation", "", "Script hash of the curation contract (LE)")
	spotlightHashBlob := flag.String("spotlight", "", "Script hash of the spotlight contract (LE)")
	relayHashBlob := flag.String("relay", "", "Script hash of the relay contract (LE)")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *flowHashBlob == "":
		log.Fatal("missing FLOW token contract hash")
	case *curationHashBlob == "":
		log.Fatal("missing curation contract hash")
	case *spotlightHashBlob == "":
		log.Fatal("missing spotlight contract hash")
	case *relayHashBlob == "":
		log.Fatal("missing relay contract hash")
	}

	err := _dump(*neoRPCEndpoint, *flowHashBlob, *curationHashBlob, *spotlightHashBlob, *relayHashBlob)
	if err != nil {
		log.Fatal(err)
	}
}

func _dump(neoBlockchainRPCEndpoint, flowHashBlob, curationHashBlob, spotlightHashBlob, relayHashBlob string) error {
	b, err := newRemoteBlockChain(neoBlockchainRPCEndpoint)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}

	defer b.close()

	s := snapshot{Block: b.currentBlock}

	flowHash, err := parseContractHash(flowHashBlob)
	if err != nil {
		return fmt.Errorf("parse FLOW token contract hash: %w", err)
	}
	s.Flow, err = dumpFlow(b, flowHash)
	if err != nil {
		return fmt.Errorf("dump FLOW token contract state: %w", err)
	}

	curationHash, err := parseContractHash(curationHashBlob)
	if err != nil {
		return fmt.Errorf("parse curation contract hash: %w", err)
	}
	s.Curation, err = dumpCuration(b, curationHash)
	if err != nil {
		return fmt.Errorf("dump curation contract state: %w", err)
	}

	spotlightHash, err := parseContractHash(spotlightHashBlob)
	if err != nil {
		return fmt.Errorf("parse spotlight contract hash: %w", err)
	}
	s.Spotlight, err = dumpSpotlight(b, spotlightHash)
	if err != nil {
		return fmt.Errorf("dump spotlight contract state: %w", err)
	}

	relayHash, err := parseContractHash(relayHashBlob)
	if err != nil {
		return fmt.Errorf("parse relay contract hash: %w", err)
	}
	s.Relay, err = dumpRelay(b, relayHash)
	if err != nil {
		return fmt.Errorf("dump relay contract state: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(s)
}

func dumpFlow(b *remoteBlockchain, hash util.Uint160) (res flowState, err error) {
	reader := flow.NewReader(b.inv, hash)

	supply, err := reader.TotalSupply()
	if err != nil {
		return res, fmt.Errorf("get total supply: %w", err)
	}

	res.TotalSupply = supply.String()

	return res, nil
}

func dumpCuration(b *remoteBlockchain, hash util.Uint160) (res curationState, err error) {
	reader := curation.NewReader(b.inv, hash)

	minStake, err := reader.MinStake()
	if err != nil {
		return res, fmt.Errorf("get minimum stake: %w", err)
	}
	slashBps, err := reader.SlashPercentage()
	if err != nil {
		return res, fmt.Errorf("get slash percentage: %w", err)
	}
	totalStaked, err := reader.TotalStaked()
	if err != nil {
		return res, fmt.Errorf("get total staked: %w", err)
	}
	totalSlashed, err := reader.TotalSlashed()
	if err != nil {
		return res, fmt.Errorf("get total slashed: %w", err)
	}
	reportCount, err := reader.ReportCount()
	if err != nil {
		return res, fmt.Errorf("get report count: %w", err)
	}
	rewardPool, err := reader.RewardPool()
	if err != nil {
		return res, fmt.Errorf("get reward pool: %w", err)
	}
	paused, err := reader.IsPaused()
	if err != nil {
		return res, fmt.Errorf("get pause state: %w", err)
	}

	res.MinStake = minStake.String()
	res.SlashPercentage = slashBps.String()
	res.TotalStaked = totalStaked.String()
	res.TotalSlashed = totalSlashed.String()
	res.ReportCount = reportCount.String()
	res.RewardPool = rewardPool.String()
	res.Paused = paused

	return res, nil
}

func dumpSpotlight(b *remoteBlockchain, hash util.Uint160) (res spotlightState, err error) {
	reader := spotlight.NewReader(b.inv, hash)

	minBid, err := reader.MinBid()
	if err != nil {
		return res, fmt.Errorf("get minimum bid: %w", err)
	}
	totalBurned, err := reader.TotalBurned()
	if err != nil {
		return res, fmt.Errorf("get total burned: %w", err)
	}
	paused, err := reader.IsPaused()
	if err != nil {
		return res, fmt.Errorf("get pause state: %w", err)
	}

	res.MinBid = minBid.String()
	res.TotalBurned = totalBurned.String()
	res.Paused = paused

	entities, err := trackedEntities(b, reader)
	if err != nil {
		return res, fmt.Errorf("list tracked entities: %w", err)
	}

	for _, entity := range entities {
		bid, err := reader.CurrentBid(entity)
		if err != nil {
			return res, fmt.Errorf("get bid on '%s': %w", entity.StringLE(), err)
		}

		res.Bids = append(res.Bids, bidState{
			Entity:    entity.StringLE(),
			Bidder:    bid.Bidder.StringLE(),
			Amount:    bid.Amount.String(),
			Timestamp: bid.Timestamp.String(),
			Active:    bid.Active,
		})
	}

	return res, nil
}

func dumpRelay(b *remoteBlockchain, hash util.Uint160) (res relayState, err error) {
	reader := relay.NewReader(b.inv, hash)

	admin, err := reader.Administrator()
	if err != nil {
		return res, fmt.Errorf("get administrator: %w", err)
	}

	res.Administrator = admin.StringLE()

	return res, nil
}

// trackedEntities drains the tracked entity iterator through an RPC session.
// Servers without session support make SessionIterator fail, fall back to
// in-VM iterator expansion then.
func trackedEntities(b *remoteBlockchain, reader *spotlight.ContractReader) ([]util.Uint160, error) {
	const pageSize = 100

	sessionID, iter, err := reader.TrackedEntities()
	if err != nil {
		items, err := reader.TrackedEntitiesExpanded(pageSize)
		if err != nil {
			return nil, fmt.Errorf("expand iterator: %w", err)
		}
		return decodeEntities(items)
	}

	defer func() {
		_ = b.inv.TerminateSession(sessionID)
	}()

	var res []util.Uint160

	for {
		items, err := b.inv.TraverseIterator(sessionID, &iter, pageSize)
		if err != nil {
			return nil, fmt.Errorf("traverse iterator: %w", err)
		}
		if len(items) == 0 {
			return res, nil
		}

		page, err := decodeEntities(items)
		if err != nil {
			return nil, err
		}

		res = append(res, page...)
	}
}

func decodeEntities(items []stackitem.Item) ([]util.Uint160, error) {
	res := make([]util.Uint160, 0, len(items))

	for i := range items {
		bs, err := items[i].TryBytes()
		if err != nil {
			return nil, fmt.Errorf("entity #%d: %w", i, err)
		}

		u, err := util.Uint160DecodeBytesBE(bs)
		if err != nil {
			return nil, fmt.Errorf("entity #%d: %w", i, err)
		}

		res = append(res, u)
	}

	return res, nil
}
