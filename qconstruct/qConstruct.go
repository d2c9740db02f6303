// Package qconstruct implements APRS-IS Q construct path processing: the
// server-side rules (aprsc/javAPRSSrvr's "q algorithm") a feed client
// applies to a Record's path before relaying it onward, recording how the
// packet entered the network and detecting routing loops.
package qconstruct

import (
	"fmt"
	"net"
	"strings"

	"aprsparse"
)

// ConnectionType identifies how the local client is attached to the
// packet it is processing.
type ConnectionType int

const (
	ConnectionDirectUDP ConnectionType = iota
	ConnectionUnverified
	ConnectionVerifiedClientOnly
	ConnectionVerified
	ConnectionOutboundServer
	ConnectionSendOnly
	ConnectionClientOnly
)

// Config carries the local identity needed to apply the Q construct
// rules to one packet.
type Config struct {
	ServerLogin    string
	ClientLogin    string
	ConnectionType ConnectionType
	EnableTrace    bool
	RemoteIP       string
	IsVerified     bool
	IsClientOnly   bool
	IsSendOnly     bool
}

// Result is the outcome of applying the Q construct rules to a Record.
type Result struct {
	Path       []string
	ShouldDrop bool
	DropReason string
	IsLoop     bool
}

// Apply processes rec's path per the Q construct rules, returning the
// rewritten path and any drop/loop determination.
func Apply(rec *aprsparse.Record, config *Config) (*Result, error) {
	result := &Result{
		Path: make([]string, len(rec.Path)),
	}
	copy(result.Path, rec.Path)

	result.applyInitialProcessing(rec, config)

	if result.checkForLoopsBeforeProcessing(config) {
		return result, nil
	}

	switch config.ConnectionType {
	case ConnectionDirectUDP:
		result.processDirectUDP(config)
	case ConnectionUnverified:
		result.processUnverified(config, rec.From)
	case ConnectionVerifiedClientOnly:
		result.processVerifiedClientOnly(config, rec.From)
	case ConnectionVerified, ConnectionSendOnly, ConnectionClientOnly:
		result.processStandardConnection(config, rec.From)
	case ConnectionOutboundServer:
		result.processOutboundServer(config)
	}

	result.applyFinalProcessing(config)

	return result, nil
}

func (r *Result) applyInitialProcessing(rec *aprsparse.Record, config *Config) {
	if len(r.Path) > 0 {
		lastElement := r.Path[len(r.Path)-1]
		if strings.HasPrefix(lastElement, "q") && len(lastElement) == 3 {
			r.Path = r.Path[:len(r.Path)-1]
		}
	}

	if !r.hasQConstruct() && strings.EqualFold(rec.From, config.ClientLogin) {
		if config.IsVerified {
			r.Path = append(r.Path, "TCPIP*")
		} else {
			r.Path = append(r.Path, "TCPXX*")
		}
	}
}

func (r *Result) checkForLoopsBeforeProcessing(config *Config) bool {
	if r.hasSpecificQConstruct("qAZ") {
		r.ShouldDrop = true
		r.DropReason = "qAZ construct - server-client command packet"
		return true
	}

	if r.hasSpecificQConstruct("qAC") && !r.hasTCPIPPath() {
		r.ShouldDrop = true
		r.DropReason = "qAC construct without TCPIP* path"
		return true
	}

	if r.containsServerLogin(config.ServerLogin) {
		r.ShouldDrop = true
		r.IsLoop = true
		r.DropReason = "Loop detected - server login found in q construct"
		return true
	}

	if r.hasDuplicateCallsigns() {
		r.ShouldDrop = true
		r.IsLoop = true
		r.DropReason = "Loop detected - duplicate callsign-SSID in q construct"
		return true
	}

	return false
}

func (r *Result) processDirectUDP(config *Config) {
	qConstructCount := r.countQConstructs()

	switch {
	case qConstructCount == 1:
		r.replaceQConstruct("qAU", config.ServerLogin)
	case qConstructCount > 1:
		r.ShouldDrop = true
		r.DropReason = "Multiple q constructs in UDP packet"
	default:
		r.Path = append(r.Path, "qAU", config.ServerLogin)
	}
}

func (r *Result) processUnverified(config *Config, fromCall string) {
	if !strings.EqualFold(fromCall, config.ClientLogin) {
		r.ShouldDrop = true
		r.DropReason = "FROMCALL doesn't match login in unverified connection"
		return
	}

	if r.hasQConstruct() {
		r.replaceQConstruct("qAX", config.ServerLogin)
	} else {
		r.Path = append(r.Path, "qAX", config.ServerLogin)
	}
}

func (r *Result) processVerifiedClientOnly(config *Config, fromCall string) {
	if strings.EqualFold(fromCall, config.ClientLogin) {
		return
	}

	if r.hasQConstruct() {
		qConstructIndex := r.findQConstructIndex()
		if qConstructIndex >= 0 && qConstructIndex+1 < len(r.Path) {
			qType := r.Path[qConstructIndex]
			viaCall := r.Path[qConstructIndex+1]

			switch qType {
			case "qAR", "qAr":
				r.Path[qConstructIndex] = "qAo"
			case "qAS":
				r.Path[qConstructIndex] = "qAO"
			case "qAC":
				if !strings.EqualFold(viaCall, config.ServerLogin) &&
					!strings.EqualFold(viaCall, config.ClientLogin) {
					r.Path[qConstructIndex] = "qAO"
				}
			}
		}
	} else if len(r.Path) > 1 && strings.HasSuffix(r.Path[len(r.Path)-1], ",I") {
		viaCall := strings.TrimSuffix(r.Path[len(r.Path)-1], ",I")
		r.Path = r.Path[:len(r.Path)-1]
		r.Path = append(r.Path, "qAo", viaCall)
	} else {
		r.Path = append(r.Path, "qAO", config.ClientLogin)
	}
}

func (r *Result) processStandardConnection(config *Config, fromCall string) {
	if r.hasQConstruct() {
		return
	}

	if len(r.Path) > 0 {
		lastElement := r.Path[len(r.Path)-1]
		if strings.HasSuffix(lastElement, ",I") {
			viaCall := strings.TrimSuffix(lastElement, ",I")
			if strings.EqualFold(viaCall, config.ClientLogin) {
				r.Path[len(r.Path)-1] = "qAR"
				r.Path = append(r.Path, viaCall)
			} else {
				r.Path[len(r.Path)-1] = "qAr"
				r.Path = append(r.Path, viaCall)
			}
			return
		}
	}

	if strings.EqualFold(fromCall, config.ClientLogin) {
		if config.ConnectionType == ConnectionSendOnly {
			r.Path = append(r.Path, "qAO", config.ServerLogin)
		} else {
			r.Path = append(r.Path, "qAC", config.ServerLogin)
		}
	} else {
		r.Path = append(r.Path, "qAS", config.ClientLogin)
	}
}

func (r *Result) processOutboundServer(config *Config) {
	if r.hasQConstruct() {
		return
	}

	if len(r.Path) > 0 {
		lastElement := r.Path[len(r.Path)-1]
		if strings.HasSuffix(lastElement, ",I") {
			viaCall := strings.TrimSuffix(lastElement, ",I")
			r.Path[len(r.Path)-1] = "qAr"
			r.Path = append(r.Path, viaCall)
		} else {
			ipHex := r.ipToHex(config.RemoteIP)
			r.Path = append(r.Path, "qAS", ipHex)
		}
	}
}

func (r *Result) applyFinalProcessing(config *Config) {
	if r.ShouldDrop {
		return
	}

	if config.EnableTrace || r.hasSpecificQConstruct("qAI") {
		r.applyTrace(config)
	}
}

func (r *Result) applyTrace(config *Config) {
	if config.ConnectionType == ConnectionVerified && !r.containsLoginAfterQ(config.ClientLogin) {
		r.Path = append(r.Path, config.ClientLogin)
	} else if config.ConnectionType == ConnectionOutboundServer {
		ipHex := r.ipToHex(config.RemoteIP)
		r.Path = append(r.Path, ipHex)
	}

	r.Path = append(r.Path, config.ServerLogin)
}

func (r *Result) hasQConstruct() bool {
	for _, element := range r.Path {
		if strings.HasPrefix(element, "q") && len(element) == 3 {
			return true
		}
	}
	return false
}

func (r *Result) hasSpecificQConstruct(qType string) bool {
	for _, element := range r.Path {
		if element == qType {
			return true
		}
	}
	return false
}

func (r *Result) countQConstructs() int {
	count := 0
	for _, element := range r.Path {
		if strings.HasPrefix(element, "q") && len(element) == 3 {
			count++
		}
	}
	return count
}

func (r *Result) findQConstructIndex() int {
	for i, element := range r.Path {
		if strings.HasPrefix(element, "q") && len(element) == 3 {
			return i
		}
	}
	return -1
}

func (r *Result) replaceQConstruct(newQType string, viaCall string) {
	index := r.findQConstructIndex()
	if index >= 0 {
		r.Path[index] = newQType
		if index+1 < len(r.Path) {
			r.Path[index+1] = viaCall
		} else {
			r.Path = append(r.Path, viaCall)
		}
	}
}

func (r *Result) hasTCPIPPath() bool {
	for _, element := range r.Path {
		if element == "TCPIP*" {
			return true
		}
	}
	return false
}

func (r *Result) containsServerLogin(serverLogin string) bool {
	for _, element := range r.Path {
		if strings.EqualFold(element, serverLogin) {
			return true
		}
	}
	return false
}

func (r *Result) hasDuplicateCallsigns() bool {
	seen := make(map[string]bool)
	for _, element := range r.Path {
		if aprsparse.ValidateCallsign(element) {
			normalized := strings.ToUpper(element)
			if seen[normalized] {
				return true
			}
			seen[normalized] = true
		}
	}
	return false
}

func (r *Result) containsLoginAfterQ(login string) bool {
	for i, element := range r.Path {
		if strings.HasPrefix(element, "q") && len(element) == 3 {
			if i+1 < len(r.Path) && strings.EqualFold(r.Path[i+1], login) {
				return true
			}
		}
	}
	return false
}

// ipToHex converts an IP address to its 8 (or 16) hex-digit APRS-IS form.
func (r *Result) ipToHex(ipStr string) string {
	ip := net.ParseIP(ipStr)
	if ip == nil {
		return "00000000"
	}

	if v4 := ip.To4(); v4 != nil {
		return fmt.Sprintf("%02X%02X%02X%02X", v4[0], v4[1], v4[2], v4[3])
	}
	return fmt.Sprintf("%02X%02X%02X%02X%02X%02X%02X%02X",
		ip[0], ip[1], ip[2], ip[3], ip[4], ip[5], ip[6], ip[7])
}

// PathString joins the result path back into its comma-separated wire
// form.
func (r *Result) PathString() string {
	return strings.Join(r.Path, ",")
}
