package controllersim

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/sjson"
	"golang.org/x/crypto/bcrypt"
)

var jsonit = jsoniter.ConfigCompatibleWithStandardLibrary

// backendActions are served from /v1/backend1; everything else is served
// from /v1/api. Requests that arrive on the wrong base path are rejected the
// way the real controller rejects unknown actions.
var backendActions = map[string]bool{
	"get_statistics":           true,
	"show_packets_stat_for_gw": true,
	"show_controller_ip":       true,
	"add_vpn_user":             true,
	"list_policy_tags":         true,
}

type vpnUser struct {
	Username string `json:"username"`
	VpcID    string `json:"vpc_id"`
	LBName   string `json:"lb_name"`
	Profile  string `json:"profile_name"`
	Attached bool   `json:"attached"`
}

type fqdnTag struct {
	Domains  []string
	Color    string
	Status   string
	Gateways []string
}

// Controller is the in-process controller simulator. Mount Router on an
// httptest server and point the SDK at it.
type Controller struct {
	Router *chi.Mux

	mu       sync.Mutex
	seed     Seed
	sessions map[string]bool
	gateways []GatewaySeed
	pairs    [][2]string
	vpnUsers map[string]*vpnUser
	fqdnTags map[string]*fqdnTag
	fwTags   map[string][]map[string]string
	policies map[string][]map[string]any
}

// Option configures the simulator.
type Option func(*Controller)

// WithCORS mounts permissive CORS handling, mirroring a controller fronted
// for browser access.
func WithCORS() Option {
	return func(c *Controller) {
		c.Router.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST"},
		}))
	}
}

// New creates a simulator with the given seed inventory and mounts its
// handlers.
func New(seed Seed, opts ...Option) *Controller {
	c := &Controller{
		Router:   chi.NewRouter(),
		seed:     seed,
		sessions: map[string]bool{},
		gateways: append([]GatewaySeed(nil), seed.Gateways...),
		vpnUsers: map[string]*vpnUser{},
		fqdnTags: map[string]*fqdnTag{},
		fwTags:   map[string][]map[string]string{},
		policies: map[string][]map[string]any{},
	}
	c.Router.Use(requestLogger)
	for _, opt := range opts {
		opt(c)
	}
	c.Router.HandleFunc("/v1/api", c.handle(false))
	c.Router.HandleFunc("/v1/backend1", c.handle(true))
	return c
}

// requestLogger logs each simulated controller request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("controllersim request")
		next.ServeHTTP(w, r)
	})
}

func (c *Controller) handle(backend bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if err := r.ParseForm(); err != nil {
			writeFail(w, "malformed request")
			return
		}
		action := r.Form.Get("action")
		if action == "" || backendActions[action] != backend {
			writeFail(w, "valid action required")
			return
		}

		c.mu.Lock()
		defer c.mu.Unlock()

		if action == "login" {
			c.handleLogin(w, r)
			return
		}
		if !c.sessions[r.Form.Get("CID")] {
			writeFail(w, "Session expired")
			return
		}
		c.dispatch(w, r, action)
	}
}

func (c *Controller) handleLogin(w http.ResponseWriter, r *http.Request) {
	username := r.Form.Get("username")
	password := r.Form.Get("password")
	if username != c.seed.Admin.Username ||
		bcrypt.CompareHashAndPassword([]byte(c.seed.Admin.PasswordHash), []byte(password)) != nil {
		writeFail(w, "Authentication failed")
		return
	}
	cid := uuid.NewString()
	c.sessions[cid] = true

	body, err := sjson.Set(`{"return":true,"results":"authorized successfully"}`, "CID", cid)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, body)
}

func (c *Controller) dispatch(w http.ResponseWriter, r *http.Request, action string) {
	get := r.Form.Get
	switch action {

	case "list_accounts":
		writeOK(w, map[string]any{"account_list": c.seed.Accounts})

	case "show_controller_ip":
		writeOK(w, map[string]any{"public_ip": c.seed.PublicIP})

	case "list_vpcs_summary":
		account := get("account_name")
		out := []map[string]any{}
		for _, g := range c.gateways {
			if g.AccountName == account {
				out = append(out, gatewayObject(g))
			}
		}
		writeOK(w, out)

	case "connect_container", "create_spoke_gw":
		for _, key := range []string{"account_name", "cloud_type", "gw_name", "vpc_id"} {
			if get(key) == "" {
				writeFail(w, key+" is required")
				return
			}
		}
		cloudType, _ := strconv.Atoi(get("cloud_type"))
		c.gateways = append(c.gateways, GatewaySeed{
			VpcName:     get("gw_name"),
			AccountName: get("account_name"),
			CloudType:   cloudType,
			VpcID:       get("vpc_id"),
			VpcRegion:   get("vpc_reg") + get("region"),
			VpcSize:     get("vpc_size") + get("gw_size"),
			VpcNet:      get("vpc_net"),
			VpcState:    "up",
		})
		writeOK(w, "gateway created successfully")

	case "delete_container":
		name := get("gw_name")
		for i, g := range c.gateways {
			if g.VpcName == name {
				c.gateways = append(c.gateways[:i], c.gateways[i+1:]...)
				writeOK(w, "gateway deleted successfully")
				return
			}
		}
		writeFail(w, "gateway "+name+" does not exist")

	case "peer_vpc_pair":
		c.pairs = append(c.pairs, [2]string{get("vpc_name1"), get("vpc_name2")})
		writeOK(w, "peering started")

	case "unpeer_vpc_pair":
		name1, name2 := get("vpc_name1"), get("vpc_name2")
		for i, p := range c.pairs {
			if p[0] == name1 && p[1] == name2 {
				c.pairs = append(c.pairs[:i], c.pairs[i+1:]...)
				writeOK(w, "unpeering started")
				return
			}
		}
		writeFail(w, "peering does not exist")

	case "list_peer_vpc_pairs":
		out := []map[string]any{}
		for _, p := range c.pairs {
			out = append(out, map[string]any{
				"vpc_name1":     p[0],
				"vpc_name2":     p[1],
				"peering_state": "Up",
			})
		}
		writeOK(w, map[string]any{"pair_list": out})

	case "enable_vpc_ha", "disable_vpc_ha", "enable_nat", "disable_nat",
		"enable_single_az_ha", "enable_spoke_ha", "attach_spoke_to_transit_gw",
		"add_extended_vpc_peer", "initial_setup", "setup_account_profile",
		"setup_customer_id", "add_admin_email_addr", "change_password":
		writeOK(w, "request accepted")

	case "add_vpn_user":
		username := get("username")
		if _, exists := c.vpnUsers[username]; exists {
			writeFail(w, "user "+username+" already exists")
			return
		}
		c.vpnUsers[username] = &vpnUser{
			Username: username,
			VpcID:    get("vpc_id"),
			LBName:   get("lb_name"),
			Profile:  get("profile_name"),
			Attached: true,
		}
		writeOK(w, "vpn user added")

	case "attach_vpn_user":
		u, exists := c.vpnUsers[get("username")]
		if !exists {
			writeFail(w, "user does not exist")
			return
		}
		u.VpcID = get("vpc_id_or_dns_name")
		u.Attached = true
		writeOK(w, "vpn user attached")

	case "detach_vpn_user":
		u, exists := c.vpnUsers[get("username")]
		if !exists {
			writeFail(w, "user does not exist")
			return
		}
		u.Attached = false
		writeOK(w, "vpn user detached")

	case "delete_vpn_user":
		username := get("username")
		if _, exists := c.vpnUsers[username]; !exists {
			writeFail(w, "user does not exist")
			return
		}
		delete(c.vpnUsers, username)
		writeOK(w, "vpn user deleted")

	case "list_vpn_users":
		out := []*vpnUser{}
		for _, name := range sortedKeys(c.vpnUsers) {
			out = append(out, c.vpnUsers[name])
		}
		writeOK(w, out)

	case "add_fqdn_filter_tag":
		c.fqdnTags[get("tag_name")] = &fqdnTag{Color: "white", Status: "disabled"}
		writeOK(w, "tag added")

	case "del_fqdn_filter_tag":
		delete(c.fqdnTags, get("tag_name"))
		writeOK(w, "tag deleted")

	case "set_fqdn_filter_tag_domain_names":
		tag, exists := c.fqdnTags[get("tag_name")]
		if !exists {
			writeFail(w, "tag does not exist")
			return
		}
		tag.Domains = append([]string(nil), r.Form["domain_names[]"]...)
		writeOK(w, "domains updated")

	case "list_fqdn_filter_tag_domain_names":
		tag, exists := c.fqdnTags[get("tag_name")]
		if !exists {
			writeFail(w, "tag does not exist")
			return
		}
		writeOK(w, tag.Domains)

	case "set_fqdn_filter_tag_color":
		tag, exists := c.fqdnTags[get("tag_name")]
		if !exists {
			writeFail(w, "tag does not exist")
			return
		}
		tag.Color = get("color")
		writeOK(w, "color updated")

	case "set_fqdn_filter_tag_state":
		tag, exists := c.fqdnTags[get("tag_name")]
		if !exists {
			writeFail(w, "tag does not exist")
			return
		}
		tag.Status = get("status")
		writeOK(w, "state updated")

	case "attach_fqdn_filter_tag_to_gw":
		tag, exists := c.fqdnTags[get("tag_name")]
		if !exists {
			writeFail(w, "tag does not exist")
			return
		}
		tag.Gateways = append(tag.Gateways, get("gw_name"))
		writeOK(w, "tag attached")

	case "detach_fqdn_filter_tag_from_gw":
		tag, exists := c.fqdnTags[get("tag_name")]
		if !exists {
			writeFail(w, "tag does not exist")
			return
		}
		for i, g := range tag.Gateways {
			if g == get("gw_name") {
				tag.Gateways = append(tag.Gateways[:i], tag.Gateways[i+1:]...)
				break
			}
		}
		writeOK(w, "tag detached")

	case "list_fqdn_filter_tag_attached_gws":
		tag, exists := c.fqdnTags[get("tag_name")]
		if !exists {
			writeFail(w, "tag does not exist")
			return
		}
		writeOK(w, tag.Gateways)

	case "list_fqdn_filter_tags":
		writeOK(w, sortedKeys(c.fqdnTags))

	case "add_policy_tag":
		c.fwTags[get("tag_name")] = []map[string]string{}
		writeOK(w, "tag added")

	case "del_policy_tag":
		delete(c.fwTags, get("tag_name"))
		writeOK(w, "tag deleted")

	case "list_policy_tags":
		writeOK(w, map[string]any{"tags": sortedKeys(c.fwTags)})

	case "list_policy_members":
		members, exists := c.fwTags[get("tag_name")]
		if !exists {
			writeFail(w, "tag does not exist")
			return
		}
		writeOK(w, map[string]any{"members": members})

	case "update_policy_members":
		name := get("tag_name")
		if _, exists := c.fwTags[name]; !exists {
			writeFail(w, "tag does not exist")
			return
		}
		members := []map[string]string{}
		for i := 0; ; i++ {
			memberName := get(fmt.Sprintf("new_policies[%d][name]", i))
			memberCIDR := get(fmt.Sprintf("new_policies[%d][cidr]", i))
			if memberName == "" && memberCIDR == "" {
				break
			}
			members = append(members, map[string]string{"name": memberName, "cidr": memberCIDR})
		}
		c.fwTags[name] = members
		writeOK(w, "members updated")

	case "vpc_access_policy":
		rules := c.policies[get("vpc_name")]
		if rules == nil {
			rules = []map[string]any{}
		}
		writeOK(w, map[string]any{
			"base_policy":            "allow-all",
			"base_policy_log_enable": "off",
			"security_rules":         rules,
		})

	case "update_access_policy":
		var rules []map[string]any
		if err := jsonit.Unmarshal([]byte(get("new_policy")), &rules); err != nil {
			writeFail(w, "invalid policy document")
			return
		}
		c.policies[get("vpc_name")] = rules
		writeOK(w, "policy updated")

	case "get_statistics":
		out := []map[string]any{}
		for _, g := range c.gateways {
			out = append(out, map[string]any{
				"name": g.VpcName,
				"data": []float64{0, 0, 0},
			})
		}
		writeOK(w, out)

	case "show_packets_stat_for_gw":
		writeOK(w, map[string]any{
			"cpu_idle":    99,
			"memory_free": 944088,
			"hdisk_free":  4236508,
		})

	case "list_spoke_gws", "list_transit_gws":
		writeOK(w, []map[string]any{})

	case "list_spoke_gw_supported_sizes":
		writeOK(w, []string{"t2.micro", "t3.small", "t3.medium"})

	case "list_public_subnets":
		writeOK(w, []string{"10.0.0.0/24~~us-east-1a~~public-a"})

	default:
		writeFail(w, "valid action required")
	}
}

func gatewayObject(g GatewaySeed) map[string]any {
	return map[string]any{
		"vpc_name":     g.VpcName,
		"account_name": g.AccountName,
		"cloud_type":   g.CloudType,
		"vpc_id":       g.VpcID,
		"vpc_reg":      g.VpcRegion,
		"vpc_size":     g.VpcSize,
		"vpc_net":      g.VpcNet,
		"vpc_state":    g.VpcState,
		"public_ip":    g.PublicIP,
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func writeOK(w http.ResponseWriter, results any) {
	writeJSON(w, map[string]any{"return": true, "results": results})
}

func writeFail(w http.ResponseWriter, reason string) {
	writeJSON(w, map[string]any{"return": false, "reason": reason})
}

func writeJSON(w http.ResponseWriter, v any) {
	body, err := jsonit.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}
